package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/pop-notify/internal/pkg/errors"
	"github.com/darkkaiser/pop-notify/internal/service/notification"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "pop-notify"

	// DefaultFilename 기본 설정 파일명입니다. 파일이 없으면 내장 기본값만 사용합니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: POP_NOTIFY_FILTER_VARIANT=sms -> filter_variant
	EnvPrefix = "POP_NOTIFY_"

	// DefaultFilterVariant 데모에서 다시 발송할 채널 종류의 기본값입니다.
	DefaultFilterVariant = notification.VariantEmail
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 구조체
type AppConfig struct {
	Debug bool `json:"debug"`

	// LogFile 로그를 ./logs 아래 파일로도 남길지 여부 (false: 표준 에러에만 출력)
	LogFile bool `json:"log_file"`

	FilterVariant notification.Variant `json:"filter_variant" validate:"defined"`
	Channels      []ChannelConfig      `json:"channels"`
}

// ChannelConfig 데모에서 생성할 채널 하나와 그 메시지를 정의하는 구조체
//
// 열거형 필드는 설정 파일에 키가 없는 경우를 구분하기 위해 포인터로 선언합니다.
// Content는 입력된 그대로 메시지에 사용됩니다.
type ChannelConfig struct {
	Variant     *notification.Variant     `json:"variant" validate:"required,defined"`
	Destination string                    `json:"destination" validate:"notblank"`
	Kind        *notification.MessageKind `json:"kind" validate:"required,defined"`
	Content     string                    `json:"content"`
	Priority    *notification.Priority    `json:"priority" validate:"required,defined"`
}

func ptr[T any](v T) *T { return &v }

// newDefaultConfig 설정 파일과 환경 변수가 없을 때 사용할 기본 설정(데모 시나리오)을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug:         false,
		LogFile:       false,
		FilterVariant: DefaultFilterVariant,
		Channels: []ChannelConfig{
			{
				Variant:     ptr(notification.VariantEmail),
				Destination: "usuario@exemplo.com",
				Kind:        ptr(notification.KindPromotion),
				Content:     "Aproveite 20% de desconto em toda a loja!",
				Priority:    ptr(notification.PriorityLow),
			},
			{
				Variant:     ptr(notification.VariantSMS),
				Destination: "+5511999998888",
				Kind:        ptr(notification.KindReminder),
				Content:     "Sua consulta é amanhã às 10h.",
				Priority:    ptr(notification.PriorityMedium),
			},
			{
				Variant:     ptr(notification.VariantPush),
				Destination: "abcd1234efgh5678",
				Kind:        ptr(notification.KindAlert),
				Content:     "Detectamos um login suspeito na sua conta.",
				Priority:    ptr(notification.PriorityHigh),
			},
			{
				Variant:     ptr(notification.VariantEmail),
				Destination: "pepo@pepo.com",
				Kind:        ptr(notification.KindAlert),
				Content:     "Sua senha expira hoje.",
				Priority:    ptr(notification.PriorityHigh),
			},
		},
	}
}

func (c *AppConfig) validate(v *validatorInstance) error {
	if err := v.checkStruct(c, "AppConfig"); err != nil {
		return err
	}

	for i, ch := range c.Channels {
		if err := v.checkStruct(ch, fmt.Sprintf("Channels[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

// FilterTarget 다시 발송할 채널 종류를 반환합니다.
func (c *AppConfig) FilterTarget() (notification.Variant, error) {
	if _, err := c.FilterVariant.MarshalText(); err != nil {
		return 0, err
	}
	return c.FilterVariant, nil
}

// BuildChannels 설정된 순서대로 채널을 생성합니다.
func (c *AppConfig) BuildChannels() ([]notification.Channel, error) {
	channels := make([]notification.Channel, 0, len(c.Channels))
	for i, cc := range c.Channels {
		ch, err := cc.Build()
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "Channels[%d] 채널 생성에 실패했습니다", i)
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

// Build 설정값으로 메시지와 채널을 생성합니다.
func (cc ChannelConfig) Build() (notification.Channel, error) {
	switch {
	case cc.Variant == nil:
		return nil, apperrors.New(apperrors.InvalidInput, "variant 값이 비어 있습니다")
	case cc.Kind == nil:
		return nil, apperrors.New(apperrors.InvalidInput, "kind 값이 비어 있습니다")
	case cc.Priority == nil:
		return nil, apperrors.New(apperrors.InvalidInput, "priority 값이 비어 있습니다")
	}

	return notification.NewChannel(*cc.Variant, cc.Destination, notification.NewMessage(*cc.Kind, cc.Content, *cc.Priority))
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, 설정 파일, 환경 변수 순으로 설정을 병합하여 AppConfig를 생성합니다.
// 뒤에 로드된 값이 앞의 값을 덮어씁니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (파일이 없으면 건너뛴다)
	if _, err := os.Stat(filename); err == nil {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일에 접근할 수 없습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 구조체에 없는 필드(오타 등)는 에러로 처리한다.
			WeaklyTypedInput: true,
			// 채널 종류, 메시지 종류, 우선순위 문자열은 각 타입의 UnmarshalText로 변환된다.
			DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		},
	}
	var appConfig AppConfig
	unmarshalConf.DecoderConfig.Result = &appConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 설정 키로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)가 됩니다.
//
//	POP_NOTIFY_FILTER_VARIANT -> filter_variant
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
