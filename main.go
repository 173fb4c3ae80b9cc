package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"claude-profile/cmd"
)

func main() {
	// A .env in the working directory may carry GEMINI_API_KEY.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", slog.Any("err", err))
	}

	os.Exit(cmd.Execute(context.Background()))
}
