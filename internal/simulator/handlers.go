package simulator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type phoneRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type verifyRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
}

type registerRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	PIN         string `json:"pin"`
	UserID      string `json:"userId"`
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	PIN         string `json:"pin"`
}

type userPayload struct {
	PhoneNumber string `json:"phoneNumber"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (s *Server) sendOTP(c *fiber.Ctx) error {
	var req phoneRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if !validPhone(req.PhoneNumber) {
		return fiber.NewError(http.StatusBadRequest, "invalid phone number")
	}

	code := newOTPCode()
	s.repo.putOTP(req.PhoneNumber, code)
	// stands in for the SMS gateway
	s.logger.Info("sms code issued", "phoneNumber", req.PhoneNumber, "code", code)

	return c.JSON(fiber.Map{"message": "verification code sent"})
}

func (s *Server) verifyOTP(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}

	sid, ok := s.repo.verifyOTP(req.PhoneNumber, req.Code)
	if !ok {
		return fiber.NewError(http.StatusBadRequest, "invalid verification code")
	}
	return c.JSON(fiber.Map{"sid": sid})
}

func (s *Server) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if !validPhone(req.PhoneNumber) {
		return fiber.NewError(http.StatusBadRequest, "invalid phone number")
	}
	if len(req.PIN) < 4 || len(req.PIN) > 8 {
		return fiber.NewError(http.StatusBadRequest, "PIN must be between 4 and 8 digits")
	}
	if !s.repo.otpVerified(req.PhoneNumber) {
		return fiber.NewError(http.StatusForbidden, "phone number not verified")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	acc := &account{
		ID:            uuid.NewString(),
		PhoneNumber:   req.PhoneNumber,
		PINHash:       hash,
		WalletAddress: newWalletAddress(),
		Blockchain:    s.cfg.Blockchain,
		Balance:       s.cfg.SeedBalance,
		Currency:      s.cfg.Currency,
		Transactions:  seedTransactions(s.cfg.Currency, now),
	}
	if err := s.repo.createAccount(acc); err != nil {
		return fiber.NewError(http.StatusConflict, err.Error())
	}

	token, err := s.mintToken(acc, now)
	if err != nil {
		return err
	}
	s.logger.Info("account registered", "phoneNumber", acc.PhoneNumber, "userId", acc.ID)

	return c.Status(http.StatusCreated).JSON(loginResponse{
		Token: token,
		User:  userPayload{PhoneNumber: acc.PhoneNumber},
	})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}

	acc, err := s.repo.findByPhone(req.PhoneNumber)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, "invalid phone number or PIN")
	}
	if bcrypt.CompareHashAndPassword(acc.PINHash, []byte(req.PIN)) != nil {
		return fiber.NewError(http.StatusUnauthorized, "invalid phone number or PIN")
	}

	token, err := s.mintToken(acc, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(loginResponse{
		Token: token,
		User:  userPayload{PhoneNumber: acc.PhoneNumber},
	})
}

// caller resolves the account identified by the verified bearer token.
func (s *Server) caller(c *fiber.Ctx) (*account, error) {
	phone, _ := c.Locals("phoneNumber").(string)
	acc, err := s.repo.findByPhone(phone)
	if err != nil {
		return nil, fiber.NewError(http.StatusUnauthorized, "account not found")
	}
	return acc, nil
}

func (s *Server) dashboard(c *fiber.Ctx) error {
	acc, err := s.caller(c)
	if err != nil {
		return err
	}
	phone, err := pathPhone(c)
	if err != nil {
		return err
	}
	if phone != acc.PhoneNumber {
		return fiber.NewError(http.StatusForbidden, "forbidden")
	}

	return c.JSON(fiber.Map{
		"phoneNumber":   acc.PhoneNumber,
		"walletAddress": acc.WalletAddress,
		"blockchain":    acc.Blockchain,
		"balance":       strconv.FormatFloat(acc.Balance, 'f', 2, 64),
		"currency":      acc.Currency,
	})
}

func (s *Server) userInfo(c *fiber.Ctx) error {
	acc, err := s.caller(c)
	if err != nil {
		return err
	}
	phone, err := pathPhone(c)
	if err != nil {
		return err
	}
	if phone != acc.PhoneNumber {
		return fiber.NewError(http.StatusForbidden, "forbidden")
	}
	return c.JSON(acc.Profile)
}

func (s *Server) updateUserInfo(c *fiber.Ctx) error {
	acc, err := s.caller(c)
	if err != nil {
		return err
	}
	phone, err := pathPhone(c)
	if err != nil {
		return err
	}
	if phone != acc.PhoneNumber {
		return fiber.NewError(http.StatusForbidden, "forbidden")
	}

	var p profile
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.repo.updateProfile(acc.PhoneNumber, p); err != nil {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{"message": "profile updated"})
}

func (s *Server) transactions(c *fiber.Ctx) error {
	acc, err := s.caller(c)
	if err != nil {
		return err
	}
	return c.JSON(acc.Transactions)
}

func (s *Server) transactionsByAddress(c *fiber.Ctx) error {
	acc, err := s.caller(c)
	if err != nil {
		return err
	}
	if c.Params("address") != acc.WalletAddress {
		return c.JSON([]transaction{})
	}
	return c.JSON(acc.Transactions)
}

// pathPhone decodes the :phone path segment ("+" arrives percent-encoded).
func pathPhone(c *fiber.Ctx) (string, error) {
	phone, err := url.PathUnescape(c.Params("phone"))
	if err != nil {
		return "", fiber.NewError(http.StatusBadRequest, "invalid phone number")
	}
	return phone, nil
}

func validPhone(phone string) bool {
	if !strings.HasPrefix(phone, "+") || len(phone) < 8 {
		return false
	}
	for _, r := range phone[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// newOTPCode draws a uniform 6-digit code.
func newOTPCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand failing is unrecoverable anyway
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64())
}
