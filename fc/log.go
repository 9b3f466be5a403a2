package fc

import "log"

const (
	RuntimeStarted = "FunctionCompute custom runtime inited."
	InvokeStarted  = "FC Invoke Start RequestId: "
	InvokeEnded    = "FC Invoke End RequestId: "
	InitStarted    = "FC Initialize Start RequestId: "
	InitEnded      = "FC Initialize End RequestId: "
)

func LogRuntimeStarted() {
	log.Println(RuntimeStarted)
}

func LogInvokeStart(requestID string) {
	log.Println(InvokeStarted + requestID)
}

func LogInvokeEnd(requestID string) {
	log.Println(InvokeEnded + requestID)
}

func LogInitStart(requestID string) {
	log.Println(InitStarted + requestID)
}

func LogInitEnd(requestID string) {
	log.Println(InitEnded + requestID)
}
