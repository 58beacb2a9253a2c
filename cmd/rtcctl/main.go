package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danmuck/fwctl/internal/config"
	"github.com/danmuck/fwctl/internal/logging"
	"github.com/danmuck/fwctl/internal/rtc"
	"github.com/danmuck/fwctl/internal/serialport"
)

func main() {
	logging.ConfigureRuntime()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, serialport.SystemOpener{}, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "rtcctl: %v\n", err)
		os.Exit(1)
	}
}

// run resolves defaults, then the -config file, then explicit flags, and sends once.
func run(ctx context.Context, args []string, stdout io.Writer, opener serialport.Opener, now func() time.Time) error {
	fs := flag.NewFlagSet("rtcctl", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config path")
	port := fs.String("port", "", "serial port name")
	baud := fs.Int("baud", 0, "baud rate")
	token := fs.String("token", "", "RTC token (AAMMDDWHHMMSS), sent as given")
	useNow := fs.Bool("now", false, "build the token from the local clock")
	bootDelay := fs.Duration("boot-delay", 0, "wait after open before writing")
	responseDelay := fs.Duration("response-delay", 0, "wait after writing before reading")
	list := fs.Bool("list", false, "list serial ports and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		ports, err := serialport.ListPorts()
		if err != nil {
			return err
		}
		for _, p := range ports {
			fmt.Fprintln(stdout, p)
		}
		return nil
	}

	cfg := rtc.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.OverlayRTCConfig(*configPath, cfg)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["port"] {
		cfg.Serial.Name = *port
	}
	if set["baud"] {
		cfg.Serial.Baud = *baud
	}
	if set["token"] {
		cfg.Token = rtc.Token(*token)
	}
	if *useNow {
		if set["token"] {
			return fmt.Errorf("-token and -now are mutually exclusive")
		}
		cfg.Token = rtc.FormatToken(now())
	}
	if set["boot-delay"] {
		cfg.BootDelay = *bootDelay
	}
	if set["response-delay"] {
		cfg.ResponseDelay = *responseDelay
	}
	if err := config.ValidateSenderConfig(cfg); err != nil {
		return err
	}
	logger := logging.For("rtcctl")
	logger.Debug().Msgf("rtcctl.run port=%q token=%q boot_delay=%s response_delay=%s",
		cfg.Serial.String(), cfg.Token, cfg.BootDelay, cfg.ResponseDelay)

	_, err := rtc.NewSender(cfg, opener, stdout).Send(ctx)
	return err
}
