package audit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/idfwu/ccem/pkg/models/api"
	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStatusProvider struct {
	mock.Mock
}

func (m *mockStatusProvider) Status(ctx context.Context) (domain.AuditStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AuditStatus), args.Error(1)
}

func TestHandler_GetStatus(t *testing.T) {
	tests := []struct {
		name           string
		status         domain.AuditStatus
		err            error
		expectedStatus int
		expected       *api.AuditStatus
	}{
		{
			name: "completed",
			status: domain.AuditStatus{
				Completed: true,
				Timestamp: "ts",
				Audits:    []domain.AuditRecord{{Flag: "bypassPermissions", Project: "idfwu", Risk: domain.RiskHigh}},
			},
			expectedStatus: http.StatusOK,
			expected: &api.AuditStatus{
				Completed: true,
				Timestamp: "ts",
				Audits:    []api.AuditRecord{{Flag: "bypassPermissions", Project: "idfwu", Risk: api.RiskHigh}},
			},
		},
		{
			name:           "pending",
			status:         domain.AuditStatus{Audits: []domain.AuditRecord{}},
			expectedStatus: http.StatusOK,
			expected:       &api.AuditStatus{Audits: []api.AuditRecord{}},
		},
		{
			name:           "provider error",
			status:         domain.AuditStatus{},
			err:            errors.New("permission denied"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := new(mockStatusProvider)
			provider.On("Status", mock.Anything).Return(tc.status, tc.err).Once()

			rec := httptest.NewRecorder()
			NewHandler(provider).GetStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/security-audit", nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expected != nil {
				var actual api.AuditStatus
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
				assert.Equal(t, *tc.expected, actual)
			}
			provider.AssertExpectations(t)
		})
	}
}
