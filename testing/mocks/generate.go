package mocks

//go:generate mockgen -package mocks -destination listener.go -mock_names Listener=Listener net Listener
