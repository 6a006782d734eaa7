// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

package logger_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/soniakeys/gumwall/internal/logger"
)

func TestL(t *testing.T) {
	if logger.L(context.Background()) != zap.L() {
		t.Fatal("empty context should give the global logger")
	}
	l := zaptest.NewLogger(t)
	ctx := logger.NewContext(context.Background(), l)
	if logger.L(ctx) != l {
		t.Fatal("logger not carried")
	}
	if logger.L(logger.NewContext(ctx, nil)) != zap.L() {
		t.Fatal("nil logger should give the global logger")
	}
}
