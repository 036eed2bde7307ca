package launcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/pkg/logparser"
	"github.com/shirou/gopsutil/v3/process"
)

// Spawner starts a composed invocation. Output of the process has to be written to stdout and stderr
type Spawner interface {
	Spawn(ctx context.Context, inv *Invocation, stdout io.Writer, stderr io.Writer) (*Process, error)
}

// Process is a started game
type Process struct {
	Pid  int
	wait func() error
}

// NewProcess returns a Process that is awaited by calling wait
func NewProcess(pid int, wait func() error) *Process {
	return &Process{Pid: pid, wait: wait}
}

// Wait blocks until the game exited
func (p *Process) Wait() error {
	if p.wait == nil {
		return nil
	}
	return p.wait()
}

// ExecSpawner starts the game as a child process using os/exec
type ExecSpawner struct {
	// Env is appended to the environment of this process
	Env []string
}

// Spawn starts inv. Cancelling ctx or pressing ctrl-c terminates the game
func (e *ExecSpawner) Spawn(ctx context.Context, inv *Invocation, stdout io.Writer, stderr io.Writer) (*Process, error) {
	cmd := exec.Command(inv.Java, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Stdin = os.Stdin
	cmd.Env = append(os.Environ(), e.Env...)
	// some things may rely on PWD
	cmd.Env = append(cmd.Env, "PWD="+inv.Dir)

	runtime.GC()
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	// we catch ctrl-c to stop minecraft ourself
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)
		select {
		case <-done:
			return
		case <-sigs:
		case <-ctx.Done():
		}
		terminate(cmd.Process.Pid)
	}()

	wait := func() error {
		defer close(done)
		err := cmd.Wait()
		// 130 is a normal stop after ctrl-c
		if code := cmd.ProcessState.ExitCode(); code == 0 || code == 130 {
			return nil
		}
		return err
	}

	return NewProcess(cmd.Process.Pid, wait), nil
}

// terminate stops the game and everything it started
func terminate(pid int) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return
	}
	if children, err := p.Children(); err == nil {
		for _, child := range children {
			child.Terminate()
		}
	}
	p.Terminate()
}

// Launch composes the invocation and starts it. Output of the game is forwarded to the logger line by line
func (c *Composer) Launch(ctx context.Context, req LaunchRequest) (*Process, error) {
	inv, err := c.Compose(req)
	if err != nil {
		return nil, err
	}

	log := c.logger()
	log.Headline(fmt.Sprintf("Launching Minecraft %s as %s", inv.Version, inv.Identity.Name))

	spawner := c.Spawner
	if spawner == nil {
		spawner = &ExecSpawner{}
	}

	stdout := newLineWriter(forwardLine(log))
	stderr := newLineWriter(forwardLine(log))
	p, err := spawner.Spawn(ctx, inv, stdout, stderr)
	if err != nil {
		return nil, err
	}

	wait := p.wait
	p.wait = func() error {
		var err error
		if wait != nil {
			err = wait()
		}
		stdout.Flush()
		stderr.Flush()
		return err
	}
	return p, nil
}

// forwardLine logs game output. Warnings and errors of the game are highlighted
func forwardLine(log *cmdlog.Logger) func(string) {
	return func(line string) {
		parsed := logparser.ParseLine(line)
		if parsed.IsProblem() {
			log.Warn(line)
			return
		}
		log.Log(line)
	}
}

// lineWriter calls fn for every complete line written to it
type lineWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	fn  func(string)
}

func newLineWriter(fn func(string)) *lineWriter {
	return &lineWriter{fn: fn}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(bytes.TrimRight(w.buf.Next(i+1), "\r\n"))
		w.fn(line)
	}
	return len(p), nil
}

// Flush emits a trailing line without newline
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() == 0 {
		return
	}
	line := string(bytes.TrimRight(w.buf.Bytes(), "\r\n"))
	w.buf.Reset()
	w.fn(line)
}
