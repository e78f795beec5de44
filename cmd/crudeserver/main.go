package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/astaxie/beego/config"
	"github.com/astaxie/beego/logs"

	"github.com/qdamian/crudeserver/internal/dispatch"
	"github.com/qdamian/crudeserver/internal/server"
)

var (
	host     = flag.String("host", server.DefaultHost, "listen host")
	port     = flag.Int("port", server.DefaultPort, "listen port")
	readSize = flag.Int("readsize", server.DefaultReadSize, "bytes read per connection")
	confPath = flag.String("conf", "", "optional ini config file")
)

func main() {
	flag.Parse()

	cfg := server.Config{Host: *host, Port: *port, ReadSize: *readSize}
	if *confPath != "" {
		if err := applyConfFile(&cfg); err != nil {
			logs.Error("loading config: %v", err)
			os.Exit(1)
		}
	}

	srv, err := server.Serve(cfg, dispatch.Handle)
	if err != nil {
		logs.Error("starting server: %v", err)
		os.Exit(1)
	}
	defer srv.Close()
	logs.Info("listening at %s", srv.Addr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logs.Info("server stopped")
}

// applyConfFile overlays values from an ini file onto cfg. Flags given
// explicitly on the command line win over the file.
func applyConfFile(cfg *server.Config) error {
	cnf, err := config.NewConfig("ini", *confPath)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["host"] {
		cfg.Host = cnf.DefaultString("host", cfg.Host)
	}
	if !set["port"] {
		cfg.Port = cnf.DefaultInt("port", cfg.Port)
	}
	if !set["readsize"] {
		cfg.ReadSize = cnf.DefaultInt("readsize", cfg.ReadSize)
	}
	return nil
}
