package notification

import (
	"fmt"
	"strings"

	apperrors "github.com/darkkaiser/pop-notify/internal/pkg/errors"
)

// Variant 채널의 구체적인 종류를 식별하는 태그입니다.
type Variant int

const (
	VariantEmail Variant = iota
	VariantSMS
	VariantPush
)

var variantNames = [...]string{
	VariantEmail: "email",
	VariantSMS:   "sms",
	VariantPush:  "push",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant 문자열을 Variant로 변환합니다. 대소문자를 가리지 않습니다.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, apperrors.Newf(apperrors.InvalidInput, "알 수 없는 채널 종류입니다: '%s' (허용값: email, sms, push)", s)
}

func (v Variant) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(variantNames) {
		return nil, apperrors.Newf(apperrors.InvalidInput, "정의되지 않은 채널 종류입니다: %d", int(v))
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ErrEmptyDestination 채널의 목적지(주소, 전화번호, 디바이스 토큰)가 비어 있을 때 반환됩니다.
var ErrEmptyDestination = apperrors.New(apperrors.InvalidInput, "채널의 목적지(주소, 전화번호, 디바이스 토큰)는 비어 있을 수 없습니다")

// Channel 메시지를 하나 가지고 있으며 발송 문구를 만들어낼 수 있는 알림 채널입니다.
//
// 구현체는 이 패키지의 EmailChannel, SMSChannel, PushChannel 세 가지뿐이며,
// Variant()가 구체 타입을 식별하는 태그 역할을 합니다.
type Channel interface {
	// Variant 채널의 종류를 반환합니다.
	Variant() Variant

	// Destination 메시지를 받을 대상(주소, 전화번호, 디바이스 토큰)을 반환합니다.
	Destination() string

	// Message 채널이 가지고 있는 메시지를 반환합니다.
	Message() Message

	// Render 발송 시 출력할 한 줄의 문구를 만들어 반환합니다.
	Render() string

	sealed()
}

const (
	urgentTag = "URGENT! "

	genericFormat = "%sGeneric notification: %s"
	variantFormat = "%s%s sent to %s: %s [Type: %s]"
)

// urgentPrefix 우선순위가 High인 메시지에 붙일 접두어를 반환합니다.
func urgentPrefix(m Message) string {
	if m.IsUrgent() {
		return urgentTag
	}
	return ""
}

// RenderGeneric 채널 종류와 무관한 기본 발송 문구를 만듭니다.
func RenderGeneric(m Message) string {
	return fmt.Sprintf(genericFormat, urgentPrefix(m), m.Content())
}

func renderVariant(label, destination string, m Message) string {
	return fmt.Sprintf(variantFormat, urgentPrefix(m), label, destination, m.Content(), m.Kind())
}

// base 모든 채널 구현체가 임베딩하는 공통 구조체입니다.
//
// 메시지 보관과 기본 문구(RenderGeneric)를 담당하고, 각 채널은 Render를 재정의하여
// 자신의 목적지 형식으로 문구를 만듭니다.
type base struct {
	message Message
}

func (b base) Message() Message { return b.message }

// Render 기본 문구를 반환합니다. 구체 채널이 재정의하지 않았을 때만 사용됩니다.
func (b base) Render() string { return RenderGeneric(b.message) }

func (base) sealed() {}

func checkDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrEmptyDestination
	}
	return nil
}

// EmailChannel 이메일 주소로 메시지를 보내는 채널입니다.
type EmailChannel struct {
	base
	address string
}

// NewEmailChannel 새로운 EmailChannel을 생성합니다.
func NewEmailChannel(address string, m Message) (EmailChannel, error) {
	if err := checkDestination(address); err != nil {
		return EmailChannel{}, err
	}
	return EmailChannel{base: base{message: m}, address: address}, nil
}

func (c EmailChannel) Variant() Variant    { return VariantEmail }
func (c EmailChannel) Destination() string { return c.address }
func (c EmailChannel) Address() string     { return c.address }

func (c EmailChannel) Render() string {
	return renderVariant("Email", c.address, c.message)
}

// SMSChannel 전화번호로 문자 메시지를 보내는 채널입니다.
type SMSChannel struct {
	base
	phoneNumber string
}

// NewSMSChannel 새로운 SMSChannel을 생성합니다.
func NewSMSChannel(phoneNumber string, m Message) (SMSChannel, error) {
	if err := checkDestination(phoneNumber); err != nil {
		return SMSChannel{}, err
	}
	return SMSChannel{base: base{message: m}, phoneNumber: phoneNumber}, nil
}

func (c SMSChannel) Variant() Variant    { return VariantSMS }
func (c SMSChannel) Destination() string { return c.phoneNumber }
func (c SMSChannel) PhoneNumber() string { return c.phoneNumber }

func (c SMSChannel) Render() string {
	return renderVariant("SMS", c.phoneNumber, c.message)
}

// PushChannel 디바이스 토큰으로 푸시 알림을 보내는 채널입니다.
type PushChannel struct {
	base
	deviceToken string
}

// NewPushChannel 새로운 PushChannel을 생성합니다.
func NewPushChannel(deviceToken string, m Message) (PushChannel, error) {
	if err := checkDestination(deviceToken); err != nil {
		return PushChannel{}, err
	}
	return PushChannel{base: base{message: m}, deviceToken: deviceToken}, nil
}

func (c PushChannel) Variant() Variant    { return VariantPush }
func (c PushChannel) Destination() string { return c.deviceToken }
func (c PushChannel) DeviceToken() string { return c.deviceToken }

func (c PushChannel) Render() string {
	return renderVariant("Push", c.deviceToken, c.message)
}

// NewChannel 태그(Variant)에 해당하는 채널을 생성합니다.
func NewChannel(v Variant, destination string, m Message) (Channel, error) {
	var (
		c   Channel
		err error
	)

	switch v {
	case VariantEmail:
		c, err = NewEmailChannel(destination, m)
	case VariantSMS:
		c, err = NewSMSChannel(destination, m)
	case VariantPush:
		c, err = NewPushChannel(destination, m)
	default:
		return nil, apperrors.Newf(apperrors.InvalidInput, "정의되지 않은 채널 종류입니다: %s", v)
	}

	if err != nil {
		return nil, err
	}
	return c, nil
}
