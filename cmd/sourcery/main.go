package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/viant/sourcery/inspector"
	"github.com/viant/sourcery/inspector/graph"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML inspection config URL",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   formatYAML,
			Usage:   "output format: yaml or json",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
		},
	}

	cmd := &cli.Command{
		Name:  "sourcery",
		Usage: "Swift variable declaration analysis",
		Commands: []*cli.Command{
			{
				Name:  "inspect",
				Usage: "Extract variables from a Swift file or directory",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide one swift file or directory as argument")
					}
					path := c.Args().First()
					stat, err := os.Stat(path)
					if err != nil {
						return fmt.Errorf("invalid path: %w", err)
					}

					config, err := loadConfig(ctx, c.String("config"))
					if err != nil {
						return err
					}

					factory := inspector.NewFactory(config, newLogger(c.Bool("debug")))
					if !stat.IsDir() {
						aFile, err := factory.InspectFile(path)
						if err != nil {
							return err
						}
						return render(os.Stdout, aFile, c.String("format"))
					}
					pkg, err := factory.InspectPackage(path)
					if err != nil {
						return err
					}
					return render(os.Stdout, pkg, c.String("format"))
				},
			},
			{
				Name:  "project",
				Usage: "Detect the Swift project containing a path and extract variables of all its sources",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					path := "."
					if c.Args().Len() > 0 {
						path = c.Args().First()
					}
					config, err := loadConfig(ctx, c.String("config"))
					if err != nil {
						return err
					}
					factory := inspector.NewFactory(config, newLogger(c.Bool("debug")))
					project, err := factory.InspectProject(path)
					if err != nil {
						return err
					}
					return render(os.Stdout, project, c.String("format"))
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(ctx context.Context, URL string) (*graph.Config, error) {
	if URL == "" {
		return graph.DefaultConfig(), nil
	}
	return graph.LoadConfig(ctx, URL)
}
