package service

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/consulta-ai/consulta-ai/app/core"
	"github.com/consulta-ai/consulta-ai/pkg/safe"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "query service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	defer app.Shutdown()

	go safe.Run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Datasource().Ping(ctx); err != nil {
			slog.Warn("datasource not reachable at startup", slog.String("error", err.Error()))
		}
	})

	serve(app)

	return nil
}

type TrainOptions struct {
	Options
	Reset bool
	Yes   bool
}

func NewTrainCommand() *cobra.Command {
	opts := &TrainOptions{}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "load training material into the knowledge base",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTrain(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "wipe existing knowledge before training")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the reset confirmation prompt")
	return cmd
}

func RunTrain(opts *TrainOptions) error {
	cfg := core.MustLoadBaseConfig(opts.ConfigPath)
	app := core.MustSetupCore(cfg)
	defer app.Shutdown()

	ctx := context.Background()

	if opts.Reset {
		if !opts.Yes && !confirm("This will delete all existing knowledge fragments. Continue?") {
			fmt.Println("aborted")
			return nil
		}
		if err := app.Engine().Knowledge().Reset(ctx); err != nil {
			return err
		}
		fmt.Println("knowledge base cleared")
	}

	stats := app.Trainer().Run(ctx, cfg.Training)
	fmt.Printf("training finished: %d tables, %d docs, %d examples, %d errors\n",
		stats.TablesTrained, stats.DocsTrained, stats.QueriesTrained, stats.Errors)
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
