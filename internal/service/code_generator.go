package service

import (
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

// CodeLength длина короткого кода
const CodeLength = 8

// CodeGenerator генерирует короткие коды из случайного UUID.
// Уникальность не гарантируется, конфликты разрешает хранилище.
type CodeGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// GenerateCode возвращает первые CodeLength символов UUID v4 ([0-9a-f])
func (g *CodeGenerator) GenerateCode() model.Code {
	return model.Code(uuid.NewString()[:CodeLength])
}
