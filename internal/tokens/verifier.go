package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetClaims é o payload do token de reset de senha. A assinatura HMAC cobre
// o payload inteiro: qualquer mutação (inclusive do user_id) invalida o token.
type ResetClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Verifier assina e verifica tokens de reset de senha. A chave é injetada na
// construção, nunca lida de estado global, para permitir testes com chaves
// distintas.
type Verifier struct {
	key []byte
}

// NewVerifier cria um Verifier a partir do segredo do servidor.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("reset token secret must not be empty")
	}
	return &Verifier{key: []byte(secret)}, nil
}

// Generate emite um token assinado ligando userID a um prazo de expiração.
func (v *Verifier) Generate(userID uint, lifespan time.Duration) (string, error) {
	now := time.Now()
	claims := &ResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifespan)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "harborhr",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.key)
	if err != nil {
		return "", fmt.Errorf("error signing reset token: %w", err)
	}
	return signed, nil
}

// Verify valida autenticidade, integridade e expiração do token e retorna o
// userID embutido. Tokens malformados, forjados ou expirados falham da mesma
// forma; o chamador não deve distinguir os casos para o usuário final.
func (v *Verifier) Verify(tokenString string) (uint, error) {
	claims := &ResetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return 0, fmt.Errorf("error parsing reset token: %w", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid reset token")
	}
	if claims.UserID == 0 {
		return 0, fmt.Errorf("reset token missing user id")
	}
	return claims.UserID, nil
}
