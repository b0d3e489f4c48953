package log

import "github.com/sirupsen/logrus"

// silentFormatter 아무것도 출력하지 않는 포맷터입니다.
// io.Discard로 출력을 버리더라도 logrus는 포맷팅을 수행하므로 그 비용을 없애기 위해 사용합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
