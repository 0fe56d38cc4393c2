package device

import (
	"context"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/protocol"
)

const (
	// probePayload is the liveness probe body; any reply means alive
	probePayload = `HLK`
	// probeTimeout bounds the wait for a probe reply
	probeTimeout = 750 * time.Millisecond
	// connectTimeout bounds TCP connection establishment
	connectTimeout = 750 * time.Millisecond
	// exchangeTimeout bounds the write plus optional read of one command
	exchangeTimeout = time.Second
	// readBufSize is the fixed receive buffer for both transports
	readBufSize = 2048
)

// listenBroadcastUDP opens the shared probe socket with SO_BROADCAST set,
// so probes may target broadcast addresses as well as unicast ones.
func listenBroadcastUDP() (*net.UDPConn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var opErr error
			if err := c.Control(func(fd uintptr) {
				opErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
			}); err != nil {
				return err
			}
			return opErr
		},
	}
	conn, err := lc.ListenPacket(context.Background(), `udp4`, `:0`)
	if err != nil {
		return nil, err
	}
	return conn.(*net.UDPConn), nil
}

// probe sends one liveness datagram on the shared UDP socket and waits for
// any reply.  Callers must hold the write lock: the socket is reused
// across calls and is not safe for concurrent use.
func (d *Device) probe() protocol.Result {
	if d.closed {
		return protocol.Failed(common.ErrClosed)
	}

	common.Log.Debugf(`probing %v:%v`, d.ip, d.udpAddr.Port)
	if _, err := d.udpConn.WriteToUDP([]byte(probePayload), d.udpAddr); err != nil {
		common.Log.Errorf(`probe send to %v failed: %v`, d.ip, err)
		return protocol.Failed(err)
	}

	buf := make([]byte, readBufSize)
	_ = d.udpConn.SetReadDeadline(time.Now().Add(probeTimeout))
	n, _, err := d.udpConn.ReadFromUDP(buf)
	if err != nil {
		common.Log.Debugf(`no probe reply from %v: %v`, d.ip, err)
		return protocol.Failed(err)
	}

	return protocol.Ok(buf[:n])
}

// command opens a fresh TCP connection, writes one forged packet and, when
// wantResponse is set, performs a single fixed-size read.  The connection
// is closed before returning.  Callers must hold the write lock.
func (d *Device) command(pkt []byte, wantResponse bool) protocol.Result {
	if d.closed {
		return protocol.Failed(common.ErrClosed)
	}

	common.Log.Debugf(`sending %v bytes to %v`, len(pkt), d.tcpAddr)
	conn, err := net.DialTimeout(`tcp`, d.tcpAddr, connectTimeout)
	if err != nil {
		common.Log.Errorf(`connect to %v failed: %v`, d.tcpAddr, err)
		return protocol.Failed(err)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetDeadline(time.Now().Add(exchangeTimeout))
	if _, err := conn.Write(pkt); err != nil {
		common.Log.Errorf(`write to %v failed: %v`, d.tcpAddr, err)
		return protocol.Failed(err)
	}

	if !wantResponse {
		return protocol.Ok(nil)
	}

	buf := make([]byte, readBufSize)
	n, err := conn.Read(buf)
	if err != nil {
		common.Log.Errorf(`read from %v failed: %v`, d.tcpAddr, err)
		return protocol.Failed(err)
	}

	return protocol.Ok(buf[:n])
}
