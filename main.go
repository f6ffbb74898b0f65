package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heathj/uisim/dom"
	"github.com/heathj/uisim/scene"
	"github.com/heathj/uisim/simulate"
)

func main() {
	if err := rootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(v *viper.Viper) *cobra.Command {
	var cmd = &cobra.Command{
		Use:           "uisim",
		Short:         "Build and fire synthetic UI events",
		Long:          `uisim builds synthetic input events the way a given browser would and fires them at elements of a scene`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(v)
		},
	}

	// Global flags
	cmd.PersistentFlags().String("config", "", "config file (yaml)")
	cmd.PersistentFlags().String("platform", "chrome", "browser preset: chrome, firefox or safari")
	cmd.PersistentFlags().String("user-agent", "", "user agent overriding the preset's")
	cmd.PersistentFlags().Bool("touch-events", false, "whether the host has a TouchEvent constructor (default from the preset)")
	cmd.PersistentFlags().String("scene", "", "scene file; the built-in demo scene when empty")
	cmd.PersistentFlags().String("log-level", "warning", "log level")

	// Bind flags to viper
	for _, name := range []string{"config", "platform", "user-agent", "touch-events", "scene", "log-level"} {
		v.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}

	// Environment variable support
	v.SetEnvPrefix("UISIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cmd.AddCommand(typesCmd(v))
	cmd.AddCommand(buildCmd(v))
	cmd.AddCommand(fireCmd(v))
	cmd.AddCommand(fireAtCmd(v))
	cmd.AddCommand(treeCmd(v))

	return cmd
}

func setupLogging(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "read config")
		}
	}

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetOutput(os.Stderr)
	return nil
}

// platform resolves the configured preset with its overrides.
func platform(v *viper.Viper) (simulate.Platform, error) {
	name := v.GetString("platform")
	p, ok := simulate.PlatformByName(name)
	if !ok {
		return simulate.Platform{}, errors.Errorf("unknown platform %q", name)
	}
	if ua := v.GetString("user-agent"); ua != "" {
		p.UserAgent = ua
	}
	if v.IsSet("touch-events") {
		p.TouchEvents = v.GetBool("touch-events")
	}
	return p, nil
}

func loadScene(v *viper.Viper) (*dom.Node, error) {
	var (
		s   *scene.Scene
		err error
	)
	if path := v.GetString("scene"); path != "" {
		s, err = scene.Load(path)
	} else {
		s, err = scene.ParseString(scene.Demo)
	}
	if err != nil {
		return nil, err
	}
	return s.Document(), nil
}

// session is what every event command works against.
type session struct {
	doc *dom.Node
	sim *simulate.Simulator
}

func newSession(v *viper.Viper) (*session, error) {
	p, err := platform(v)
	if err != nil {
		return nil, err
	}
	doc, err := loadScene(v)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_agent":   p.UserAgent,
		"touch_events": p.TouchEvents,
	}).Debug("platform")
	return &session{
		doc: doc,
		sim: simulate.ForWindow(doc.DefaultView, p),
	}, nil
}
