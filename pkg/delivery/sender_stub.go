package delivery

import (
	"context"

	"github.com/wneessen/go-mail"
)

type SenderStub struct {
	Sent []*mail.Msg
	Err  error
}

func NewSenderStub() *SenderStub {
	return &SenderStub{}
}

func (s *SenderStub) DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, messages...)
	return nil
}

func (s *SenderStub) Reset() {
	s.Sent = nil
	s.Err = nil
}
