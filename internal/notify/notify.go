package notify

// Notifier 聊天通知抽象，实现必须是尽力而为的：
// 任何发送失败只记本地日志，不向调用方抛错，也不阻塞交易主流程
type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...interface{})
}
