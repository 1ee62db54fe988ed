package tokens

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
)

// Formato legado: "<userId>-<md5(email) em 32 hex>". Emitido por versões
// antigas do sistema; links ainda em circulação precisam ser aceitos, mas
// nenhum token novo é emitido neste formato.
var legacyTokenPattern = regexp.MustCompile(`^(\d+)-([A-Fa-f0-9]{32})$`)

// ParseLegacyToken extrai o user id e o hash de e-mail de um token legado.
// Retorna false para qualquer string fora do formato exato.
func ParseLegacyToken(token string) (userID uint, emailHash string, ok bool) {
	m := legacyTokenPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, "", false
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return uint(id), m[2], true
}

// LegacyHashMatchesEmail compara o hash do token com o digest do e-mail atual
// do usuário, sem diferenciar maiúsculas de minúsculas no hex.
func LegacyHashMatchesEmail(emailHash, email string) bool {
	sum := md5.Sum([]byte(email))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(emailHash)), []byte(expected)) == 1
}
