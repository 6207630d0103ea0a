package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server hands every SSH session its own termtris process on a pty
type Server struct {
	*ssh.Server
	Binary string   // Path to the termtris client
	Args   []string // Extra client flags, e.g. -config
}

func winsize(w, h int) *pty.Winsize {
	return &pty.Winsize{Cols: uint16(w), Rows: uint16(h)}
}

// command builds the client invocation for a session
func (s *Server) command(ctx context.Context, user, term string) *exec.Cmd {
	args := append([]string{"-nick", Nickname(user), "-log", "/dev/null"}, s.Args...)

	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, sess.User(), ptyReq.Term)

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window.Width, ptyReq.Window.Height))
	if err != nil {
		log.Printf("failed to start client for %s: %s", sess.User(), err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	log.Printf("session started for %s from %s", sess.User(), sess.RemoteAddr())

	go func() {
		for win := range winCh {
			pty.Setsize(f, winsize(win.Width, win.Height))
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	cmd.Wait()
	log.Printf("session ended for %s", sess.User())
}

// NewServer prepares an SSH host on addr. An empty hostKey makes the server
// generate a key on start.
func NewServer(addr, binary, hostKey string, args ...string) (*Server, error) {
	server := &Server{
		Binary: binary,
		Args:   args,
	}

	s := &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     server.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if hostKey != "" {
		err := s.SetOption(ssh.HostKeyFile(hostKey))
		if err != nil {
			return nil, fmt.Errorf("failed to load host key %s: %w", hostKey, err)
		}
	}

	server.Server = s
	return server, nil
}
