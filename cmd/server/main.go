package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/termtris/pkg"
)

func main() {
	addr := flag.String("addr", pkg.SshPort, "address to listen for SSH connections")
	binary := flag.String("termtris", "termtris", "path to the termtris client")
	hostKey := flag.String("host-key", "", "path to the SSH host key, generated when empty")
	config := flag.String("config", "", "config file passed to every client")
	logPath := flag.String("log", "./termtris-server.log", "path to log file")
	flag.Parse()

	pkg.InitLog(*logPath, "SERVER: ")

	var args []string
	if *config != "" {
		args = append(args, "-config", *config)
	}

	s, err := pkg.NewServer(*addr, *binary, *hostKey, args...)
	if err != nil {
		log.Fatalf("failed to create server: %s", err)
	}

	go func() {
		log.Printf("Listening at %s", *addr)
		err := s.ListenAndServe()
		if err != nil && err != ssh.ErrServerClosed {
			log.Fatalf("failed to serve: %s", err)
		}
	}()

	// Keep the server run
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	log.Println("Server stopped")
	s.Close()
}
