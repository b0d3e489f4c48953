package log

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// resetGlobalState 테스트 간 독립성을 위해 패키지 전역 상태와 logrus 설정을 초기화합니다.
func resetGlobalState() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil
	consoleOutput = os.Stderr

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(io.Discard)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}
