package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Leitura de entrada do usuário. Entrada malformada nunca chega ao core:
// re-perguntamos até receber algo tipado corretamente ou o stdin fechar.

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) readInt(prompt string) (int, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(a.out, "Digite um número válido.")
			continue
		}
		return n, true
	}
}

func (a *App) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return 0, false
		}
		// aceita vírgula decimal
		line = strings.ReplaceAll(line, ",", ".")
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Digite um valor válido.")
			continue
		}
		return v, true
	}
}
