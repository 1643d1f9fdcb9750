package websocket

import (
	"testing"
	"time"

	"chat-srv/internal/model"
)

func TestDecodeInbound(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		want    InboundFrame
	}{
		{
			name: "ping frame",
			data: `{"type":"ping"}`,
			want: InboundFrame{Type: FramePing},
		},
		{
			name: "send_message frame",
			data: `{"type":"send_message","receiver_id":7,"content":"hey"}`,
			want: InboundFrame{Type: FrameSendMessage, ReceiverID: 7, Content: "hey"},
		},
		{
			name:    "invalid JSON",
			data:    `{type: ping}`,
			wantErr: true,
		},
		{
			name:    "missing type",
			data:    `{"content":"hey"}`,
			wantErr: true,
		},
		{
			name:    "empty payload",
			data:    ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInbound([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeInbound() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && got != tt.want {
				t.Errorf("DecodeInbound() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewMessageEvent_TypeSelection(t *testing.T) {
	receiver := int64(2)
	direct := model.Message{ID: 1, SenderID: 1, ReceiverID: &receiver, Content: "hi", CreatedAt: time.Now()}
	feed := model.Message{ID: 2, SenderID: 1, Content: "all", CreatedAt: time.Now()}

	if got := NewMessageEvent(direct).Type; got != EventNewMessage {
		t.Errorf("direct message event type = %q, want %q", got, EventNewMessage)
	}
	if got := NewMessageEvent(feed).Type; got != EventBroadcast {
		t.Errorf("feed message event type = %q, want %q", got, EventBroadcast)
	}
}

func TestNewActiveUsersEvent_NeverNil(t *testing.T) {
	ev := NewActiveUsersEvent(nil)
	if ev.Users == nil {
		t.Error("NewActiveUsersEvent(nil).Users = nil, want empty slice")
	}
	if ev.Type != EventActiveUsers {
		t.Errorf("event type = %q, want %q", ev.Type, EventActiveUsers)
	}
}
