package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para os snapshots mensais
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
