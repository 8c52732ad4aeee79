package handlers

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Session  *SessionHandler
	Matching *MatchingHandler
	Wallet   *WalletHandler
	Activity *ActivityHandler
	Location *LocationHandler
}
