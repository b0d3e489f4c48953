package notification

import (
	"fmt"
	"io"
	"os"

	applog "github.com/darkkaiser/pop-notify/pkg/log"
)

const component = "notification.dispatcher"

// Dispatcher 채널 목록을 순서대로 발송하여 한 줄씩 출력합니다.
//
// 모든 발송은 호출한 고루틴에서 순차적으로 수행되며, 재시도하지 않습니다.
type Dispatcher struct {
	w io.Writer
}

// NewDispatcher 새로운 Dispatcher를 생성합니다. w가 nil이면 표준 출력을 사용합니다.
func NewDispatcher(w io.Writer) *Dispatcher {
	if w == nil {
		w = os.Stdout
	}
	return &Dispatcher{w: w}
}

// Dispatch 채널 하나를 발송합니다.
//
// 출력 실패는 호출자에게 전파하지 않고 로그만 남깁니다.
func (d *Dispatcher) Dispatch(c Channel) {
	m := c.Message()

	fields := applog.Fields{
		"variant":     c.Variant().String(),
		"destination": applog.MaskSensitiveData(c.Destination()),
		"kind":        m.Kind().String(),
		"priority":    m.Priority().String(),
	}

	if _, err := fmt.Fprintln(d.w, c.Render()); err != nil {
		fields["error"] = err
		applog.WithComponentAndFields(component, fields).Warn("알림 발송 문구 출력 실패")
		return
	}

	applog.WithComponentAndFields(component, fields).Debug("알림 발송 완료")
}

// DispatchAll 채널 목록을 주어진 순서대로 하나씩 발송합니다.
// 빈 목록이면 아무것도 출력하지 않습니다.
func (d *Dispatcher) DispatchAll(channels []Channel) {
	for _, c := range channels {
		d.Dispatch(c)
	}
}

// Dispatch 채널 하나를 w로 발송합니다.
func Dispatch(w io.Writer, c Channel) {
	NewDispatcher(w).Dispatch(c)
}
