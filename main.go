package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"gridcaster/assets"
	"gridcaster/config"
	"gridcaster/logger"
)

func main() {
	settings, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Usage of gridcaster:\n%s", config.Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger.Init(settings.Log.Level, settings.Log.Format)
	logger.Log.WithFields(logrus.Fields{
		"config":  settings.ConfigFile,
		"screen":  fmt.Sprintf("%dx%d", settings.Screen.Width, settings.Screen.Height),
		"fov":     settings.Render.FOV,
		"overlay": settings.Overlay,
	}).Info("starting gridcaster")

	g, err := NewGame(settings, assetFS(settings.Assets.Dir))
	if err != nil {
		logger.Log.WithError(err).Fatal("startup failed")
	}

	if err := g.Run(); err != nil {
		logger.Log.WithError(err).Fatal("game loop stopped")
	}
}

// assetFS serves images from dir, or the built-in set when dir is empty.
func assetFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return assets.FS
}
