// Package notification 이메일, SMS, 푸시 알림 채널과 이를 발송하는 Dispatcher를 제공합니다.
//
// 각 채널은 변경할 수 없는 Message 하나를 가지고 있으며, 발송 시 채널 종류에 맞는
// 한 줄의 문구를 출력합니다. 우선순위가 High인 메시지는 "URGENT! " 접두어가 붙습니다.
//
//	msg := notification.NewMessage(notification.KindAlert, "서버 점검 안내", notification.PriorityHigh)
//	email, _ := notification.NewEmailChannel("pepo@pepo.com", msg)
//
//	d := notification.NewDispatcher(os.Stdout)
//	d.Dispatch(email) // URGENT! Email sent to pepo@pepo.com: 서버 점검 안내 [Type: Alert]
package notification
