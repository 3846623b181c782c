// Package smtp fornece o transporte SMTP usado pelo notification-sender.
package smtp

import "io"

// Client é a interface do cliente SMTP.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface é a interface do transporte SMTP.
type TransportInterface interface {
	Connect() (Client, error)
	GetSMTPUser() string
}
