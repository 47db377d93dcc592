package engine

import (
	"strings"

	"github.com/shaiso/Conveyor/internal/domain"
)

// BuildArgs строит argv-токены из параметров шага.
//
// Правила на каждую пару (key, value) в порядке параметров:
//   - имя флага: ключ, начинающийся с "--", берётся как есть; иначе
//     синтезируется "--{key}" с заменой "_" на "-"
//   - bool: true — только флаг, false — ничего
//   - последовательность: флаг один раз, затем каждый элемент
//     отдельным токеном в исходном порядке
//   - скаляр: флаг, затем один токен с литеральным текстом значения
//
// Функция чистая и тотальная: одинаковые параметры всегда дают
// байт-идентичную последовательность токенов. Порядок и форма токенов —
// наблюдаемый контракт шага, который парсит их как собственный CLI.
func BuildArgs(params []domain.Param) []string {
	args := make([]string, 0, len(params)*2)

	for _, p := range params {
		flag := FlagName(p.Name)

		switch p.Value.Kind {
		case domain.ValueBool:
			if p.Value.Bool {
				args = append(args, flag)
			}
		case domain.ValueList:
			args = append(args, flag)
			args = append(args, p.Value.List...)
		default:
			args = append(args, flag, p.Value.Scalar)
		}
	}

	return args
}

// FlagName возвращает имя флага для ключа параметра.
func FlagName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	return "--" + strings.ReplaceAll(key, "_", "-")
}

// CommandLine собирает полную командную строку шага:
// [interpreter] executable argv...
//
// Пустой interpreter означает прямой запуск исполняемого файла шага.
func CommandLine(interpreter string, step domain.Step) []string {
	args := BuildArgs(step.Params)

	cmdline := make([]string, 0, len(args)+2)
	if interpreter != "" {
		cmdline = append(cmdline, interpreter)
	}
	cmdline = append(cmdline, step.Executable)
	cmdline = append(cmdline, args...)

	return cmdline
}
