package notification

import (
	"strconv"

	apperrors "github.com/darkkaiser/pop-notify/internal/pkg/errors"
	"github.com/iancoleman/strcase"
)

// MessageKind 알림 메시지의 종류입니다. 정의된 네 가지 값 외에는 존재하지 않습니다.
type MessageKind int

const (
	KindPromotion MessageKind = iota
	KindReminder
	KindAlert
	KindNotification
)

var messageKindNames = [...]string{
	KindPromotion:    "Promotion",
	KindReminder:     "Reminder",
	KindAlert:        "Alert",
	KindNotification: "Notification",
}

func (k MessageKind) String() string {
	if !k.valid() {
		return "MessageKind(" + strconv.Itoa(int(k)) + ")"
	}
	return messageKindNames[k]
}

func (k MessageKind) valid() bool {
	return k >= 0 && int(k) < len(messageKindNames)
}

// ParseMessageKind 문자열을 MessageKind로 변환합니다.
// 대소문자와 구분자를 가리지 않습니다. (예: "promotion", "PROMOTION", "Promotion")
func ParseMessageKind(s string) (MessageKind, error) {
	name := strcase.ToCamel(s)
	for k, n := range messageKindNames {
		if n == name {
			return MessageKind(k), nil
		}
	}
	return 0, apperrors.Newf(apperrors.InvalidInput, "알 수 없는 메시지 종류입니다: '%s' (허용값: promotion, reminder, alert, notification)", s)
}

func (k MessageKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, apperrors.Newf(apperrors.InvalidInput, "정의되지 않은 메시지 종류입니다: %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *MessageKind) UnmarshalText(text []byte) error {
	parsed, err := ParseMessageKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Priority 알림 메시지의 우선순위입니다.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = [...]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

func (p Priority) String() string {
	if !p.valid() {
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
	return priorityNames[p]
}

func (p Priority) valid() bool {
	return p >= 0 && int(p) < len(priorityNames)
}

// ParsePriority 문자열을 Priority로 변환합니다. 대소문자를 가리지 않습니다.
func ParsePriority(s string) (Priority, error) {
	name := strcase.ToCamel(s)
	for p, n := range priorityNames {
		if n == name {
			return Priority(p), nil
		}
	}
	return 0, apperrors.Newf(apperrors.InvalidInput, "알 수 없는 우선순위입니다: '%s' (허용값: low, medium, high)", s)
}

func (p Priority) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, apperrors.Newf(apperrors.InvalidInput, "정의되지 않은 우선순위입니다: %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Message 채널이 발송하는 알림 내용입니다.
//
// 생성 후에는 변경할 수 없으며, 값으로 복사되므로 복사본끼리는 서로 독립적입니다.
type Message struct {
	kind     MessageKind
	content  string
	priority Priority
}

// NewMessage 새로운 Message를 생성합니다. 빈 내용도 허용합니다.
func NewMessage(kind MessageKind, content string, priority Priority) Message {
	return Message{
		kind:     kind,
		content:  content,
		priority: priority,
	}
}

func (m Message) Kind() MessageKind { return m.kind }

func (m Message) Content() string { return m.content }

func (m Message) Priority() Priority { return m.priority }

// IsUrgent 우선순위가 High인지 여부를 반환합니다.
func (m Message) IsUrgent() bool {
	return m.priority == PriorityHigh
}
