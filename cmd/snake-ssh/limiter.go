package main

import (
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// ipLimiter caps concurrent sessions per remote IP.
type ipLimiter struct {
	mutex  sync.Mutex
	counts map[string]int
	limit  int
}

func newIPLimiter(limit int) *ipLimiter {
	return &ipLimiter{counts: make(map[string]int), limit: limit}
}

// acquire reserves a slot and reports the count after reserving.
func (l *ipLimiter) acquire(ip string) (int, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.counts[ip] >= l.limit {
		return l.counts[ip], false
	}
	l.counts[ip]++
	return l.counts[ip], true
}

func (l *ipLimiter) release(ip string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.counts[ip]--
	if l.counts[ip] <= 0 {
		delete(l.counts, ip)
	}
}

func (l *ipLimiter) count(ip string) int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.counts[ip]
}

func remoteIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	return addr.String()
}

func (l *ipLimiter) middleware(logger *log.Logger) func(ssh.Handler) ssh.Handler {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ip := remoteIP(s.RemoteAddr())
			current, ok := l.acquire(ip)
			if !ok {
				logger.Warn("Connection denied: IP limit exceeded", "ip", ip, "limit", l.limit)
				fmt.Fprintf(s, "Too many active connections from your IP (%d/%d). Please try again later.\r\n", current, l.limit)
				s.Close()
				return
			}
			defer func() {
				l.release(ip)
				logger.Info("Connection closed", "ip", ip, "count_after", l.count(ip))
			}()

			logger.Info("Connection accepted", "ip", ip, "count", current, "limit", l.limit)
			next(s)
		}
	}
}
