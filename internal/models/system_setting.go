package models

import (
	"harborhr/backend/internal/utils"

	"gorm.io/gorm"
)

// SystemSetting armazena configurações globais do sistema no banco de dados.
// Isso permite que as configurações sejam alteradas dinamicamente através da UI,
// sem a necessidade de reiniciar a aplicação ou alterar arquivos .env.
type SystemSetting struct {
	gorm.Model
	Key         string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Value       string `gorm:"type:text;not null"` // O valor da configuração, criptografado
	Description string `gorm:"type:varchar(255)"`
	IsEncrypted bool   `gorm:"default:true"`
	ExposedToUI bool   `gorm:"default:true"`
}

// BeforeSave é um hook do GORM que criptografa o valor antes de salvar.
func (s *SystemSetting) BeforeSave(tx *gorm.DB) (err error) {
	if s.IsEncrypted && s.Value != "" {
		encryptedValue, err := utils.Encrypt(s.Value)
		if err != nil {
			return err
		}
		s.Value = encryptedValue
	}
	return nil
}

// GetDecryptedValue descriptografa e retorna o valor da configuração.
func (s *SystemSetting) GetDecryptedValue() (string, error) {
	if !s.IsEncrypted || s.Value == "" {
		return s.Value, nil
	}
	return utils.Decrypt(s.Value)
}

// GetSystemSetting busca uma configuração pela chave e retorna o valor descriptografado.
// Retorna string vazia (sem erro) quando a chave não existe.
func GetSystemSetting(db *gorm.DB, key string) (string, error) {
	var setting SystemSetting
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return setting.GetDecryptedValue()
}
