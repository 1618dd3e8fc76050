package commands

import (
	"io"

	"github.com/idfwu/ccem/pkg/services/config"
	"github.com/spf13/viper"
)

// Env is shared by all subcommands. Settings is populated by the root
// command's pre-run hook, after flags are parsed.
type Env struct {
	Viper    *viper.Viper
	Settings *config.Settings
	Stdin    io.Reader
}
