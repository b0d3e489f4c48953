package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/pop-notify/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// validatorInstance 커스텀 검증 규칙이 등록된 validator를 감쌉니다.
type validatorInstance struct {
	v *validator.Validate
}

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validatorInstance {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 이름을 표시한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"defined":  validateDefined,
		"notblank": validateNotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return &validatorInstance{v: v}
}

// validateDefined 열거형 값이 정의된 범위 안에 있는지 검사합니다.
// 정의되지 않은 값은 MarshalText가 에러를 반환합니다.
func validateDefined(fl validator.FieldLevel) bool {
	m, ok := fl.Field().Interface().(encoding.TextMarshaler)
	if !ok {
		return false
	}
	_, err := m.MarshalText()
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func (vi *validatorInstance) checkStruct(s any, contextName string) error {
	err := vi.v.Struct(s)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		firstErr := validationErrors[0]

		switch firstErr.Tag() {
		case "required", "notblank":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값이 비어 있습니다", contextName, firstErr.Field()))
		case "defined":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값이 정의되지 않은 값입니다: '%v'", contextName, firstErr.Field(), firstErr.Value()))
		}

		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
	}

	return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
}
