package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/Conveyor/internal/domain"
)

// Load читает YAML-файл и разрешает его в канонический Pipeline.
func Load(path string) (*domain.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	pipeline, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("resolve config %s: %w", path, err)
	}
	return pipeline, nil
}

// Parse разрешает сырой YAML-документ в канонический Pipeline.
//
// Поддерживаются две схемы шагов:
//
//	{ name|id, script: path, params: {...} }
//	{ name|id, component: path, parameters: {...} }
//
// Правила разрешения:
//   - список шагов берётся из ключа "steps", иначе из "pipeline";
//     при наличии обоих побеждает "steps" (новая схема), слияния нет
//   - имя шага: name → id → "Step N" (1-based)
//   - исполняемый файл: script (+params) предпочтительнее
//     component (+parameters); отсутствие обоих — ошибка конфигурации
//   - отсутствующий блок параметров — пустой список, не ошибка
//
// Порядок параметров сохраняется как в документе: из него строится argv.
func Parse(data []byte) (*domain.Pipeline, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrNoDocument
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrMalformedDocument
	}

	pipeline := &domain.Pipeline{
		Name:        scalarOf(root, "name", domain.DefaultPipelineName),
		Description: scalarOf(root, "description", ""),
		Interpreter: scalarOf(root, "interpreter", ""),
	}

	listNode := mapValue(root, "steps")
	if listNode == nil {
		listNode = mapValue(root, "pipeline")
	}
	if listNode == nil {
		return nil, ErrMissingStepList
	}

	listNode = resolveAlias(listNode)
	if listNode.Tag == "!!null" {
		return pipeline, nil
	}
	if listNode.Kind != yaml.SequenceNode {
		return nil, newConfigError(0, "steps",
			"step list is not a sequence", ErrMalformedDocument)
	}

	steps := make([]domain.Step, 0, len(listNode.Content))
	for i, entry := range listNode.Content {
		step, err := resolveStep(resolveAlias(entry), i+1)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	pipeline.Steps = steps

	return pipeline, nil
}

// resolveStep нормализует один элемент списка шагов.
// index — 1-based позиция шага, используется в имени по умолчанию
// и в ошибках.
func resolveStep(node *yaml.Node, index int) (domain.Step, error) {
	if node.Kind != yaml.MappingNode {
		return domain.Step{}, newConfigError(index, "",
			"step entry is not a mapping", ErrMalformedStepEntry)
	}

	step := domain.Step{
		DisplayName: scalarOf(node, "name", ""),
	}
	if step.DisplayName == "" {
		step.DisplayName = scalarOf(node, "id", "")
	}
	if step.DisplayName == "" {
		step.DisplayName = fmt.Sprintf("Step %d", index)
	}

	// script/params предпочтительнее component/parameters; источник
	// исполняемого файла определяет и ключ параметров.
	var paramsKey string
	if script := mapValue(node, "script"); script != nil {
		step.Executable = resolveAlias(script).Value
		paramsKey = "params"
	} else if component := mapValue(node, "component"); component != nil {
		step.Executable = resolveAlias(component).Value
		paramsKey = "parameters"
	} else {
		return domain.Step{}, newConfigError(index, "script",
			"no 'script' or 'component' key", ErrMissingExecutable)
	}

	params, err := resolveParams(mapValue(node, paramsKey), index)
	if err != nil {
		return domain.Step{}, err
	}
	step.Params = params

	return step, nil
}

// resolveParams декодирует блок параметров, сохраняя порядок документа.
func resolveParams(node *yaml.Node, stepIndex int) ([]domain.Param, error) {
	if node == nil {
		return nil, nil
	}

	node = resolveAlias(node)
	if node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, newConfigError(stepIndex, "params",
			"parameter block is not a mapping", ErrMalformedStepEntry)
	}

	params := make([]domain.Param, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value, err := resolveValue(resolveAlias(node.Content[i+1]))
		if err != nil {
			return nil, newConfigError(stepIndex, key,
				fmt.Sprintf("parameter %q: %v", key, err), err)
		}
		params = append(params, domain.Param{Name: key, Value: value})
	}
	return params, nil
}

// resolveValue приводит YAML-узел к закрытому union'у значений.
//
// Скаляры хранятся литеральным текстом документа: "10.5" остаётся
// "10.5" независимо от числового типа. Булевы значения распознаются
// по тегу, так что строка "true" (в кавычках) остаётся строкой.
func resolveValue(node *yaml.Node) (domain.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!bool" {
			var b bool
			if err := node.Decode(&b); err != nil {
				return domain.Value{}, fmt.Errorf("decode bool: %w", err)
			}
			return domain.BoolValue(b), nil
		}
		if node.Tag == "!!null" {
			return domain.Value{}, fmt.Errorf("%w: null", ErrUnsupportedValue)
		}
		return domain.ScalarValue(node.Value), nil

	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
				return domain.Value{}, fmt.Errorf("%w: sequence element is not a scalar", ErrUnsupportedValue)
			}
			items = append(items, item.Value)
		}
		return domain.ListValue(items), nil

	default:
		return domain.Value{}, fmt.Errorf("%w: expected boolean, scalar or sequence of scalars", ErrUnsupportedValue)
	}
}

// mapValue возвращает узел значения по ключу mapping-узла или nil.
func mapValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// scalarOf возвращает скалярное значение ключа или значение по умолчанию.
func scalarOf(node *yaml.Node, key, fallback string) string {
	v := mapValue(node, key)
	if v == nil {
		return fallback
	}
	v = resolveAlias(v)
	if v.Kind != yaml.ScalarNode || v.Tag == "!!null" || v.Value == "" {
		return fallback
	}
	return v.Value
}

// resolveAlias разыменовывает alias-узлы (&anchor / *ref).
func resolveAlias(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}
