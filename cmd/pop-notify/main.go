package main

import (
	"fmt"
	"io"
	"os"

	"github.com/darkkaiser/pop-notify/internal/config"
	apperrors "github.com/darkkaiser/pop-notify/internal/pkg/errors"
	"github.com/darkkaiser/pop-notify/internal/pkg/version"
	"github.com/darkkaiser/pop-notify/internal/service/notification"
	applog "github.com/darkkaiser/pop-notify/pkg/log"
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패 (%s): %v\n", apperrors.UnderlyingType(err), err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(logOptions(appConfig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패 (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fields := applog.Fields(buildInfo.ToMap())
	fields["debug"] = appConfig.Debug
	applog.WithComponentAndFields("main", fields).Infof("%s %s 시작", config.AppName, buildInfo)

	if err := run(os.Stdout, appConfig); err != nil {
		applog.WithComponentAndFields("main", failureFields(err)).Error("알림 데모 실행 실패")

		appLogCloser.Close()
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}

	applog.WithComponent("main").Info("알림 데모 종료")
}

// logOptions 설정에 맞는 로그 프로파일을 반환합니다.
// 로그 파일을 사용하지 않으면 파일을 만들지 않고 표준 에러에만 기록합니다.
func logOptions(appConfig *config.AppConfig) applog.Options {
	var opts applog.Options
	if appConfig.Debug {
		opts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		opts = applog.NewProductionOptions(config.AppName)
	}

	if !appConfig.LogFile {
		opts.DisableFileLog = true
		opts.EnableConsoleLog = true
	}

	return opts
}

// failureFields 실행 실패를 기록할 로그 필드를 만듭니다.
func failureFields(err error) applog.Fields {
	return applog.Fields{
		"error":      fmt.Sprintf("%+v", err),
		"error_type": apperrors.UnderlyingType(err).String(),
		"root_cause": apperrors.RootCause(err).Error(),
	}
}

// run 설정된 채널을 모두 발송한 뒤, 지정된 종류의 채널만 골라 다시 발송합니다.
func run(stdout io.Writer, appConfig *config.AppConfig) error {
	channels, err := appConfig.BuildChannels()
	if err != nil {
		return err
	}

	target, err := appConfig.FilterTarget()
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "다시 발송할 채널 종류(filter_variant)가 올바르지 않습니다")
	}

	counts := notification.CountByVariant(channels)
	applog.WithComponentAndFields("main", applog.Fields{
		"total": len(channels),
		"email": counts[notification.VariantEmail],
		"sms":   counts[notification.VariantSMS],
		"push":  counts[notification.VariantPush],
	}).Info("채널 생성 완료")

	d := notification.NewDispatcher(stdout)

	d.DispatchAll(channels)

	filtered := notification.FilterByVariant(channels, target)
	applog.WithComponentAndFields("main", applog.Fields{
		"variant": target.String(),
		"count":   len(filtered),
	}).Info("채널 종류별 재발송")

	d.DispatchAll(filtered)

	return nil
}
