// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

// Package fork runs short lived anvil processes forking a remote chain at a
// pinned block.
package fork

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/ledgerwatch/log/v3"
)

const (
	AnvilBinary = "anvil"

	// ListeningMarker is printed by anvil once its RPC server accepts connections.
	ListeningMarker = "Listening on"
)

type Config struct {
	ForkURL      string
	BlockNumber  *uint64
	ExtraArgs    []string
	Port         int
	StartTimeout time.Duration
	StopTimeout  time.Duration
}

var DefaultConfig = Config{
	StartTimeout: 20 * time.Second,
	StopTimeout:  5 * time.Second,
}

func (c Config) withDefaults() Config {
	if c.StartTimeout <= 0 {
		c.StartTimeout = DefaultConfig.StartTimeout
	}
	if c.StopTimeout <= 0 {
		c.StopTimeout = DefaultConfig.StopTimeout
	}
	return c
}

// Args returns the anvil command line for a fork listening on port.
func (c Config) Args(port int) []string {
	args := []string{"--port", strconv.Itoa(port), "--fork-url", c.ForkURL}

	if c.BlockNumber != nil {
		args = append(args, "--fork-block-number", strconv.FormatUint(*c.BlockNumber, 10))
	}

	return append(args, c.ExtraArgs...)
}

type Manager struct {
	locator Locator
	binary  string
	logger  log.Logger
}

func NewManager(locator Locator, logger log.Logger) *Manager {
	if locator == nil {
		locator = NewDirLocator()
	}

	return &Manager{
		locator: locator,
		binary:  AnvilBinary,
		logger:  logger,
	}
}

// Session is a running fork. Its endpoint is only valid between a
// successful Start and Stop.
type Session struct {
	cfg      Config
	endpoint string
	cmd      *exec.Cmd
	output   *processOutput
	logger   log.Logger

	done    chan struct{}
	waitErr error

	stopOnce sync.Once
	stopErr  error
}

func (s *Session) Endpoint() string {
	return s.endpoint
}

func (s *Session) ForkURL() string {
	return s.cfg.ForkURL
}

func (s *Session) BlockNumber() *uint64 {
	return s.cfg.BlockNumber
}

// Done is closed once the fork process has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Start spawns anvil and waits until it prints its listening line and
// answers web3_clientVersion. On any failure the process is killed before
// Start returns.
func (m *Manager) Start(ctx context.Context, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()

	if cfg.ForkURL == "" {
		return nil, &SpawnError{Reason: "no fork url"}
	}

	path, err := m.locator.Locate(m.binary)
	if err != nil {
		m.logger.Warn("[fork] anvil not found", "err", err)
		return nil, err
	}

	port := cfg.Port
	if port == 0 {
		if port, err = freePort(); err != nil {
			return nil, &SpawnError{Reason: "no free port", Err: err}
		}
	}

	logger := m.logger.New("port", port)
	output := newProcessOutput(logger)

	cmd := exec.Command(path, cfg.Args(port)...)
	cmd.Stdout = output.writer("stdout")
	cmd.Stderr = output.writer("stderr")
	cmd.WaitDelay = cfg.StopTimeout

	if err := cmd.Start(); err != nil {
		sessionStartFailures.Inc()
		return nil, &SpawnError{Reason: "can't start " + path, Err: err}
	}

	s := &Session{
		cfg:      cfg,
		endpoint: fmt.Sprintf("http://127.0.0.1:%d", port),
		cmd:      cmd,
		output:   output,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go func() {
		s.waitErr = cmd.Wait()
		close(s.done)
	}()

	logger.Debug("[fork] anvil spawned", "path", path, "pid", cmd.Process.Pid, "fork", redact(cfg.ForkURL), "block", blockString(cfg.BlockNumber))

	timer := startupTimer()

	if err := s.waitReady(ctx); err != nil {
		sessionStartFailures.Inc()
		s.kill()
		return nil, err
	}

	timer.PutSince()
	sessionsStarted.Inc()

	logger.Info("[fork] anvil ready", "endpoint", s.endpoint, "fork", redact(cfg.ForkURL), "block", blockString(cfg.BlockNumber))

	return s, nil
}

// WithSession starts a session, runs fn with it and stops it afterwards,
// also when fn fails or panics.
func (m *Manager) WithSession(ctx context.Context, cfg Config, fn func(ctx context.Context, s *Session) error) (err error) {
	s, err := m.Start(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if stopErr := s.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	return fn(ctx, s)
}

func (s *Session) waitReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StartTimeout)
	defer cancel()

	select {
	case <-s.output.listening:
	case <-s.done:
		return s.exitedEarly()
	case <-ctx.Done():
		return fmt.Errorf("%w: no %q line after %s: %w", ErrEndpointUnavailable, ListeningMarker, s.cfg.StartTimeout, ctx.Err())
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	b.MaxElapsedTime = 0

	version, err := backoff.RetryWithData(func() (string, error) {
		select {
		case <-s.done:
			return "", backoff.Permanent(s.exitedEarly())
		default:
		}
		return s.clientVersion(ctx)
	}, backoff.WithContext(b, ctx))

	if err != nil {
		var spawnErr *SpawnError
		if errors.As(err, &spawnErr) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrEndpointUnavailable, s.endpoint, err)
	}

	s.logger.Debug("[fork] endpoint answered", "version", version)
	return nil
}

func (s *Session) clientVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	client, err := rpc.DialContext(ctx, s.endpoint)
	if err != nil {
		return "", err
	}
	defer client.Close()

	var version string
	if err := client.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return "", err
	}

	return version, nil
}

func (s *Session) exitedEarly() error {
	<-s.done
	return &SpawnError{Reason: "anvil exited before it was ready", Output: s.output.Tail(), Err: s.waitErr}
}

// Stop interrupts the fork process and kills it if it has not exited after
// the stop timeout. Only the first call does anything.
func (s *Session) Stop() error {
	s.stopOnce.Do(func() {
		s.stopErr = s.stop()
		sessionsStopped.Inc()
	})
	return s.stopErr
}

func (s *Session) stop() error {
	select {
	case <-s.done:
		s.logger.Debug("[fork] anvil already exited", "err", s.waitErr)
		return nil
	default:
	}

	if err := s.cmd.Process.Signal(os.Interrupt); err != nil {
		s.logger.Debug("[fork] interrupt failed, killing", "err", err)
		return s.kill()
	}

	select {
	case <-s.done:
		s.logger.Info("[fork] anvil stopped", "endpoint", s.endpoint)
		return nil
	case <-time.After(s.cfg.StopTimeout):
		s.logger.Warn("[fork] anvil ignored interrupt, killing", "endpoint", s.endpoint, "timeout", s.cfg.StopTimeout)
		return s.kill()
	}
}

func (s *Session) kill() error {
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("can't kill anvil: %w", err)
	}
	<-s.done
	return nil
}

func freePort() (port int, err error) {
	if a, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0"); err != nil {
		return 0, err
	} else {
		if l, err := net.ListenTCP("tcp", a); err != nil {
			return 0, err
		} else {
			defer l.Close()
			return l.Addr().(*net.TCPAddr).Port, nil
		}
	}
}

// redact drops credentials, path and query from a provider url, they
// commonly carry api keys.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "<redacted>"
	}
	return u.Scheme + "://" + u.Host
}

func blockString(block *uint64) string {
	if block == nil {
		return "latest"
	}
	return strconv.FormatUint(*block, 10)
}
