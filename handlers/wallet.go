package handlers

import (
	"net/http"

	"washly/models"
	"washly/services/wallet"
	"washly/utils"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the wallet balance, ledger and visibility flag.
type WalletHandler struct {
	Svc wallet.Service
}

func NewWalletHandler(svc wallet.Service) *WalletHandler {
	return &WalletHandler{Svc: svc}
}

// GetWallet returns the balance, its formatted form and the visibility flag.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	balance := h.Svc.Balance()
	c.JSON(http.StatusOK, gin.H{
		"balance":          balance,
		"formattedBalance": utils.FormatAmount(balance),
		"balanceHidden":    h.Svc.BalanceHidden(c.Request.Context()),
	})
}

// SetVisibility persists the balance visibility toggle.
func (h *WalletHandler) SetVisibility(c *gin.Context) {
	var input struct {
		Hidden bool `json:"hidden"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.Svc.SetBalanceHidden(c.Request.Context(), input.Hidden)
	c.JSON(http.StatusOK, gin.H{"balanceHidden": input.Hidden})
}

// Recharge tops up the wallet, applying the payment-method commission.
func (h *WalletHandler) Recharge(c *gin.Context) {
	var req models.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.Recharge(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "recharge rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// Withdraw debits the wallet after a balance check.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	tx, err := h.Svc.Withdraw(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "withdrawal rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx, "balance": h.Svc.Balance()})
}

// GetTransactions returns the full ledger, newest entries last.
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transactions": h.Svc.Transactions()})
}
