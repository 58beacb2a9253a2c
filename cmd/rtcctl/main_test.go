package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/fwctl/internal/config"
	"github.com/danmuck/fwctl/internal/rtc"
	"github.com/danmuck/fwctl/internal/testutil/fakeserial"
	"github.com/danmuck/fwctl/internal/testutil/testlog"
)

func fixedNow() time.Time {
	return time.Date(2025, time.September, 1, 8, 58, 35, 0, time.Local)
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	testlog.Start(t)
	opener := fakeserial.NewOpener()
	var out bytes.Buffer

	err := run(context.Background(), []string{
		"-config", "ex.config.toml",
		"-port", "/dev/ttyUSB9",
		"-token", "2612319235959",
	}, &out, opener, fixedNow)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(opener.Opened) != 1 || opener.Opened[0].Name != "/dev/ttyUSB9" {
		t.Fatalf("unexpected opens: %+v", opener.Opened)
	}
	if opener.Opened[0].ReadTimeout != 500*time.Millisecond {
		t.Fatalf("expected config read timeout kept: %v", opener.Opened[0].ReadTimeout)
	}
	if opener.Port.ReadTimeout != 500*time.Millisecond {
		t.Fatalf("expected read timeout applied to port: %v", opener.Port.ReadTimeout)
	}
	if got := opener.Port.Written.String(); got != "2612319235959\n" {
		t.Fatalf("unexpected wire bytes: %q", got)
	}
}

func TestRunNowBuildsToken(t *testing.T) {
	testlog.Start(t)
	opener := fakeserial.NewOpener()
	var out bytes.Buffer

	err := run(context.Background(), []string{
		"-now", "-boot-delay", "0s", "-response-delay", "0s",
	}, &out, opener, fixedNow)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := opener.Port.Written.String(); got != "2509011085835\n" {
		t.Fatalf("unexpected wire bytes: %q", got)
	}
}

func TestRunRejectsTokenWithNow(t *testing.T) {
	testlog.Start(t)
	opener := fakeserial.NewOpener()
	err := run(context.Background(), []string{"-now", "-token", "x"}, &bytes.Buffer{}, opener, fixedNow)
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	if len(opener.Opened) != 0 {
		t.Fatalf("expected no open on flag error")
	}
}

func TestRunRejectsBadBaud(t *testing.T) {
	testlog.Start(t)
	opener := fakeserial.NewOpener()
	err := run(context.Background(), []string{"-baud", "-1"}, &bytes.Buffer{}, opener, fixedNow)
	if err == nil {
		t.Fatalf("expected settings error")
	}
}

func TestRunRejectsEmptyToken(t *testing.T) {
	testlog.Start(t)
	opener := fakeserial.NewOpener()
	err := run(context.Background(), []string{
		"-token", "", "-boot-delay", "0s", "-response-delay", "0s",
	}, &bytes.Buffer{}, opener, fixedNow)
	if !errors.Is(err, rtc.ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
	if len(opener.Opened) != 0 || opener.Port.Written.Len() != 0 {
		t.Fatalf("expected nothing opened or written: opens=%d written=%q", len(opener.Opened), opener.Port.Written.String())
	}
}

func TestRunAndConfigValidationAgree(t *testing.T) {
	testlog.Start(t)
	for name, content := range map[string]string{
		"baud":         "baud = 0\n",
		"read_timeout": "read_timeout = \"0s\"\n",
		"token":        "token = \"\"\n",
	} {
		path := filepath.Join(t.TempDir(), "rtc.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("%s: write config: %v", name, err)
		}
		opener := fakeserial.NewOpener()
		runErr := run(context.Background(), []string{"-config", path}, &bytes.Buffer{}, opener, fixedNow)
		if runErr == nil {
			t.Fatalf("%s: expected run to reject config", name)
		}
		if _, err := config.LoadRTCConfig(path); err == nil {
			t.Fatalf("%s: expected LoadRTCConfig to reject config rtcctl rejected: %v", name, runErr)
		}
		if len(opener.Opened) != 0 {
			t.Fatalf("%s: expected no open on invalid config", name)
		}
	}
}
