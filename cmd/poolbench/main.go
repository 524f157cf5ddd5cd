// poolbench 对象池压测工具
//
//	poolbench run --conf ./configs --strategy slice,linked --shards 8
//	poolbench config --conf ./configs
package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/njtc406/emberpool/engine/pkg/config"
	"github.com/njtc406/emberpool/engine/pkg/utils/translate"
	"github.com/njtc406/emberpool/engine/pkg/utils/version"
	"github.com/spf13/cobra"
)

var (
	confPath string
	lang     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "poolbench",
		Short:         "Benchmark and inspect ember object pools",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if lang != "" && !translate.SetLanguage(lang) {
				fmt.Fprintf(cmd.ErrOrStderr(), "unsupported language %q\n", lang)
			}
		},
	}
	root.PersistentFlags().StringVarP(&confPath, "conf", "c", "", "config directory (env EMBER_POOL_CONF_PATH, default ./configs)")
	root.PersistentFlags().StringVar(&lang, "lang", "", "output language (en-us, zh-cn)")

	root.AddCommand(newRunCmd(), newConfigCmd(), newVersionCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate the configuration and print the resolved values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Parse(confPath); err != nil {
				return err
			}
			data, err := json.MarshalIndent(config.Conf, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "poolbench", version.Info())
		},
	}
}
