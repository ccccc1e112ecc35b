package main

// Simple, single-connection-at-a-time static file server using system
// calls instead of the net library.
//
// Omitted features from the go net package:
//
// - TLS
// - Persistent and chunked connections
// - Request bodies
// - Deadlines and cancellation
// - Non-blocking sockets

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"

	"github.com/wd-uwGH2020/class-based-server/accesslog"
	"github.com/wd-uwGH2020/class-based-server/config"
	"github.com/wd-uwGH2020/class-based-server/metrics"
	"github.com/wd-uwGH2020/class-based-server/simplehttp"
)

func main() {
	configFlag := flag.String("config", "", "Path to a TOML config file")
	ipFlag := flag.String("ip_addr", "", "The IP address to bind")
	portFlag := flag.Int("port", 0, "The port to use")
	rootFlag := flag.String("root", "", "The document root to serve")
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *ipFlag != "" {
		cfg.BindAddr = *ipFlag
	}
	if *portFlag != 0 {
		cfg.Port = *portFlag
	}
	if *rootFlag != "" {
		cfg.DocRoot = *rootFlag
	}
	// The port may also be given as a bare positional argument.
	if arg := flag.Arg(0); arg != "" {
		port, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("bad port %q", arg)
		}
		cfg.Port = port
	}

	if _, err := os.Stat(cfg.DocRoot); os.IsNotExist(err) {
		log.Fatalf("document root does not exist: %s", cfg.DocRoot)
	}

	mimes := simplehttp.NewMimeTable()
	if cfg.MimeOverrides != "" {
		if err := mimes.LoadOverrides(cfg.MimeOverrides); err != nil {
			log.Fatalf("mime overrides: %v", err)
		}
	}

	var store *accesslog.Store
	if cfg.AccessLog != "" {
		var err error
		store, err = accesslog.Open(cfg.AccessLog)
		if err != nil {
			log.Fatalf("access log: %v", err)
		}
		defer store.Close()
	}

	metricsInstance := metrics.NewMetrics()
	handler := simplehttp.NewHandler(
		simplehttp.NewContentResolver(cfg.DocRoot),
		mimes,
		metricsInstance,
		store,
	)
	server, err := simplehttp.NewServer(cfg, handler)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}

	banner := color.New(color.FgGreen, color.Bold)
	banner.Println("===============")
	banner.Println("Server Started!")
	banner.Println("===============")
	log.Printf("addr: http://%s:%d", cfg.BindAddr, cfg.Port)
	log.Printf("root: %s", cfg.DocRoot)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down server...")
		server.Close()
	}()

	if err := server.Serve(); err != nil {
		log.Printf("server error: %v", err)
	}

	for name, value := range metricsInstance.GetSnapshot() {
		log.Printf("%s: %d", name, value)
	}
	log.Println("server stopped")
}
