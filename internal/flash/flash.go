// Package flash carrega uma mensagem one-shot entre o redirect e a página
// seguinte, num cookie assinado com a SECRET_KEY.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "salon_flash"

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type Store struct {
	secret []byte
}

func NewStore(secret string) *Store {
	return &Store{secret: []byte(secret)}
}

func (s *Store) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Set grava a mensagem para a próxima página renderizada.
func (s *Store) Set(c *gin.Context, level, text string) {
	b, err := json.Marshal(Message{Level: level, Text: text})
	if err != nil {
		return
	}

	payload := base64.RawURLEncoding.EncodeToString(b)
	value := payload + "." + s.sign(payload)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, value, 300, "/", "", false, true)
}

// Pop lê e apaga a mensagem pendente. Cookie ausente ou com assinatura
// inválida devolve nil.
func (s *Store) Pop(c *gin.Context) *Message {
	value, err := c.Cookie(cookieName)
	if err != nil || value == "" {
		return nil
	}

	// one-shot: apaga antes de validar
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	parts := strings.SplitN(value, ".", 2)
	if len(parts) != 2 {
		return nil
	}
	if !hmac.Equal([]byte(s.sign(parts[0])), []byte(parts[1])) {
		return nil
	}

	b, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil
	}

	var msg Message
	if err := json.Unmarshal(b, &msg); err != nil {
		return nil
	}
	return &msg
}
