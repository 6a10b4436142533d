package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logrus.WithField("tag", "main").WithError(err).Error("signalplot failed")
		os.Exit(1)
	}
}
