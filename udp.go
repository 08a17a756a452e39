/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/go-logr/logr"
	"golang.org/x/sys/unix"
)

var (
	// UDP packet size is globally limited by the message header's Length
	// field (16 bits). Exporters are expected to avoid IP fragmentation, so
	// 1500 bytes comfortably covers a typical Ethernet MTU's worth of
	// payload while still allowing a caller to raise it for jumbo frames.
	UDPPacketBufferSize int = 1500

	// Number of packets buffered between the listener goroutine and
	// whatever drains Messages(). This moves buffering from the kernel
	// socket queue into user space at the cost of per-packet memory.
	UDPChannelBufferSize int = 50
)

// UDPListener is the collector's transport collaborator (§1: "external to
// the decoder's scope"): it owns a UDP socket and hands whole packets to
// Messages() for a Decoder to parse, with no IPFIX-specific logic itself.
type UDPListener struct {
	bindAddr string
	packetCh chan []byte

	addr     *net.UDPAddr
	listener net.PacketConn
}

func NewUDPListener(bindAddr string) *UDPListener {
	return &UDPListener{
		bindAddr: bindAddr,
		packetCh: make(chan []byte, UDPChannelBufferSize),
	}
}

// allowAddressReuse sets SO_REUSEADDR and SO_REUSEPORT on fd, so multiple
// collector processes can share one listening port.
func allowAddressReuse(fd uintptr) error {
	if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return err
	}
	return unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
}

func reusePortListenConfig() net.ListenConfig {
	return net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			var sockoptErr error
			if err := c.Control(func(fd uintptr) { sockoptErr = allowAddressReuse(fd) }); err != nil {
				return err
			}
			return sockoptErr
		},
	}
}

// Listen binds the socket with SO_REUSEADDR/SO_REUSEPORT set and blocks
// until ctx is canceled or reading from the socket fails.
func (l *UDPListener) Listen(ctx context.Context) (err error) {
	logger := FromContext(ctx)
	defer close(l.packetCh)

	l.addr, err = net.ResolveUDPAddr("udp", l.bindAddr)
	if err != nil {
		logger.Error(err, "failed to resolve UDP address", "addr", l.bindAddr)
		return err
	}

	l.listener, err = reusePortListenConfig().ListenPacket(ctx, "udp", l.bindAddr)
	if err != nil {
		logger.Error(err, "failed to bind udp listener", "addr", l.bindAddr)
		return err
	}
	defer l.listener.Close()

	readErrCh := make(chan error, 1)
	go l.readLoop(logger, readErrCh)

	logger.Info("started UDP listener", "addr", l.bindAddr)
	select {
	case <-ctx.Done():
		logger.Info("shutting down UDP listener", "addr", l.bindAddr)
	case err = <-readErrCh:
	}
	return err
}

// readLoop copies datagrams off the socket onto packetCh until the socket is
// closed (the normal shutdown path, triggered by Listen's deferred Close) or
// a real read error occurs, which it reports on errCh.
func (l *UDPListener) readLoop(logger logr.Logger, errCh chan<- error) {
	buffer := make([]byte, UDPPacketBufferSize)
	for {
		n, _, err := l.listener.ReadFrom(buffer)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				UDPErrorsTotal.Inc()
				logger.Error(err, "failed to read from UDP socket")
				errCh <- err
			}
			return
		}
		UDPPacketsTotal.Inc()
		UDPPacketBytes.Add(float64(n))

		// trim to the actual packet size before handing it off, so the
		// channel doesn't retain the full-size scratch buffer per packet
		packet := make([]byte, n)
		copy(packet, buffer[:n])

		l.packetCh <- packet
	}
}

// Messages returns the channel of raw packet payloads read from the socket.
func (l *UDPListener) Messages() <-chan []byte {
	return l.packetCh
}
