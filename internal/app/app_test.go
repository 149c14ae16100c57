package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestAppRun_DelegatesAndPassesDifficulty_GoMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)

	var gotCtx context.Context
	var gotDifficulty uint8

	mr.EXPECT().
		Run(gomock.Any(), uint8(42)).
		DoAndReturn(func(ctx context.Context, difficulty uint8) error {
			gotCtx = ctx
			gotDifficulty = difficulty

			select {
			case <-ctx.Done():
				t.Fatalf("ctx was canceled prematurely")
			default:
			}
			return nil
		})

	a := New(mr, 42)

	if err := a.Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if gotCtx == nil {
		t.Fatalf("Runner.Run received nil ctx")
	}
	if gotDifficulty != 42 {
		t.Fatalf("difficulty passed = %d; want 42", gotDifficulty)
	}
}

func TestAppRun_PropagatesError_GoMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("boom")
	mr := NewMockRunner(ctrl)

	mr.EXPECT().
		Run(gomock.Any(), uint8(7)).
		Return(wantErr)

	a := New(mr, 7)

	err := a.Run()
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v; want %v", err, wantErr)
	}
}

func TestAppRun_ServesMetricsWhileRunning(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen temp: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	mr := NewMockRunner(ctrl)
	mr.EXPECT().
		Run(gomock.Any(), uint8(1)).
		DoAndReturn(func(ctx context.Context, difficulty uint8) error {
			deadline := time.Now().Add(2 * time.Second)
			for time.Now().Before(deadline) {
				resp, err := http.Get("http://" + addr + "/metrics")
				if err == nil {
					_, _ = io.Copy(io.Discard, resp.Body)
					_ = resp.Body.Close()
					if resp.StatusCode != http.StatusOK {
						t.Errorf("metrics status = %d", resp.StatusCode)
					}
					return nil
				}
				time.Sleep(20 * time.Millisecond)
			}
			t.Errorf("metrics endpoint never came up on %s", addr)
			return nil
		})

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if err := New(mr, 1, WithMetrics(log, addr)).Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
}

func TestAppRun_CancelsOnSignal_GracefulExit_GoMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)

	mr.EXPECT().
		Run(gomock.Any(), uint8(1)).
		DoAndReturn(func(ctx context.Context, difficulty uint8) error {
			<-ctx.Done()
			return nil
		})

	a := New(mr, 1)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	time.Sleep(50 * time.Millisecond)

	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("sending SIGINT failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() returned error on graceful cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after SIGINT")
	}
}
