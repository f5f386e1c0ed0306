package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "eswkit",
	Short: "EasySwap marketplace SDK command line tools.",
}

// Execute 解析命令行参数并执行相应的子命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "conf", "./config/config.toml", "conf file path")
}
