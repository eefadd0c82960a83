package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх стандартных потоков процесса
type Stdio struct{}

// NewStdio создает терминальный IO клиентских команд
func NewStdio() IO {
	return &Stdio{}
}

// Println выводит строку вывода команды
func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

// Printf выводит форматированный текст без перевода строки
func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

// ReadInput печатает prompt и читает одну строку ввода
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	return readLine()
}

// ReadPassword читает секрет устройства без эха в терминал.
// Когда stdin не терминал (ввод по pipe в скриптах), секрет
// читается как обычная строка.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine()
	}

	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

func readLine() (string, error) {
	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
