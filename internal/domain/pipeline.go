package domain

// DefaultPipelineName — имя пайплайна, если в конфигурации оно не задано.
const DefaultPipelineName = "Unnamed Pipeline"

// Pipeline — канонический пайплайн после нормализации конфигурации.
//
// Обе поддерживаемые схемы YAML (старая `pipeline`/`script`/`params`
// и новая `steps`/`component`/`parameters`) разрешаются в эту форму.
// Pipeline принадлежит driver'у на время одного прогона и после
// нормализации не изменяется.
type Pipeline struct {
	// Name — имя пайплайна. Если не задано — DefaultPipelineName.
	Name string

	// Description — описание назначения пайплайна.
	Description string

	// Interpreter — программа, которой запускаются шаги
	// (например, "python"). Пустое значение — шаг запускается напрямую.
	Interpreter string

	// Steps — упорядоченный список шагов. Пустой список — не ошибка,
	// прогон завершается вакуумно успешно.
	Steps []Step
}

// Step — канонический шаг пайплайна.
//
// Step неизменяем после разрешения: driver и invoker читают его,
// но никогда не модифицируют.
type Step struct {
	// DisplayName — человекочитаемое имя шага.
	// Порядок выбора при разрешении: name → id → "Step N".
	DisplayName string

	// Executable — путь к программе или скрипту шага.
	Executable string

	// Params — параметры шага в порядке появления в документе.
	// Порядок значим: из него детерминированно строится argv.
	Params []Param
}

// Param — один параметр шага: имя и типизированное значение.
type Param struct {
	Name  string
	Value Value
}
