//go:build !fyne

package main

import (
	"context"
	"errors"

	"github.com/gogpu/dyncanvas"
	"github.com/gogpu/dyncanvas/internal/demo"
)

func show(context.Context, string, *dyncanvas.Canvas, *demo.Scene, int) error {
	return errors.New("window support not built in; rebuild with: go run -tags fyne ./cmd/dcview")
}
