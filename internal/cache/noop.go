package cache

import "time"

// Noop é o cache usado quando o Redis está desabilitado na configuração:
// toda leitura é miss e toda escrita é descartada.
type Noop struct{}

// Get sempre devolve miss.
func (Noop) Get(_ string, _ any) (bool, error) { return false, nil }

// Set descarta o valor.
func (Noop) Set(_ string, _ any, _ time.Duration) error { return nil }

// Invalidate não tem efeito.
func (Noop) Invalidate(_ string) error { return nil }
