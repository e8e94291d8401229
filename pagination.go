package smithygen

import (
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// paginationSpec is the decoded @paginated trait with the conventional
// defaults filled in.
type paginationSpec struct {
	InputToken  string
	OutputToken string
	Items       string
}

func decodePagination(op *model.Shape) (paginationSpec, bool) {
	node, ok := op.Traits.Get(model.TraitPaginated)
	if !ok {
		return paginationSpec{}, false
	}
	spec := paginationSpec{
		InputToken:  "continuationToken",
		OutputToken: "nextContinuationToken",
		Items:       "contents",
	}
	if obj, ok := node.(map[string]any); ok {
		if v, ok := obj["inputToken"].(string); ok && v != "" {
			spec.InputToken = v
		}
		if v, ok := obj["outputToken"].(string); ok && v != "" {
			spec.OutputToken = v
		}
		if v, ok := obj["items"].(string); ok && v != "" {
			spec.Items = v
		}
	}
	return spec, true
}

// writePaginationHelpers emits an auto-paginating <operation>All function for
// every operation carrying the @paginated trait.
func (c *Context) writePaginationHelpers(w *writer.Writer) error {
	var paginated []*model.Shape
	for _, opID := range c.Service.Operations {
		op, err := c.Model.ExpectShape(opID)
		if err != nil {
			return err
		}
		if op.Traits.Has(model.TraitPaginated) {
			paginated = append(paginated, op)
		}
	}
	if len(paginated) == 0 {
		return nil
	}

	w.WriteComment("=== Pagination Helpers ===")
	w.WriteBlankLine()
	for _, op := range paginated {
		c.writePaginationHelper(w, op)
	}
	return nil
}

// writePaginationHelper emits the recursive collector for one operation. The
// helper rewrites the input's token field each round, forces the delayed
// operation, appends the page's items and recurses while the output carries a
// continuation token.
func (c *Context) writePaginationHelper(w *writer.Writer, op *model.Shape) {
	spec, ok := decodePagination(op)
	if !ok {
		return
	}
	opName := symbol.ToFunctionName(op.ID.Name())

	inputType := "()"
	if op.Input != "" && op.Input.Name() != "Unit" {
		inputType = symbol.ToTypeName(op.Input.Name())
	}
	outputType := "()"
	if op.Output != "" && op.Output.Name() != "Unit" {
		outputType = symbol.ToTypeName(op.Output.Name())
	}

	itemType := c.paginationItemType(op, spec.Items)
	itemsField := symbol.ToFunctionName(spec.Items)
	inputTokenField := symbol.ToFunctionName(spec.InputToken)
	outputTokenField := symbol.ToFunctionName(spec.OutputToken)
	helper := opName + "All"

	w.WriteDocComment("Auto-paginating version of " + opName + ".\n\n" +
		"Automatically fetches all pages and collects all items from the '" + spec.Items + "' field.\n" +
		"Uses '" + spec.InputToken + "' as input token and '" + spec.OutputToken + "' as output token.")

	w.WriteSignature(helper, "Config -> "+inputType+" -> '{IO, Exception} ["+itemType+"]")
	w.Write("$L config input =", helper)
	w.Indent()
	w.Write("let")
	w.Indent()

	w.Write("go : Optional Text -> [$L] -> '{IO, Exception} [$L]", itemType, itemType)
	w.Write("go token acc = do")
	w.Indent()
	w.Write("inputWithToken = $L.$L.set token input", inputType, inputTokenField)
	w.Write("response = !($L config inputWithToken)", opName)
	w.Write("newItems = Optional.getOrElse [] ($L.$L response)", outputType, itemsField)
	w.Write("allItems = acc ++ newItems")
	w.Write("match ($L.$L response) with", outputType, outputTokenField)
	w.Indent()
	w.Write("Some nextToken -> !(go (Some nextToken) allItems)")
	w.Write("None -> allItems")
	w.Dedent()
	w.Dedent()

	w.Write("go None []")
	w.Dedent()
	w.Dedent()
	w.WriteBlankLine()
}

// paginationItemType resolves the element type of the items list in the
// operation's output. Member name matching tolerates the casing differences
// between the trait value and the actual member name.
func (c *Context) paginationItemType(op *model.Shape, items string) string {
	if op.Output == "" || op.Output.Name() == "Unit" {
		return "a"
	}
	output, ok := c.Model.Shape(op.Output)
	if !ok || output.Type != model.TypeStructure {
		return "a"
	}

	member := output.MemberNamed(items)
	if member == nil {
		member = output.MemberNamed(pascal(items))
	}
	if member == nil {
		member = output.MemberNamed(symbol.ToFunctionName(items))
	}
	if member == nil {
		return "a"
	}

	listShape, ok := c.Model.Shape(member.Target)
	if !ok || (listShape.Type != model.TypeList && listShape.Type != model.TypeSet) || listShape.ListMember == nil {
		return "a"
	}
	elem, ok := c.Model.Shape(listShape.ListMember.Target)
	if !ok {
		return "a"
	}
	return c.Symbols.Resolve(elem).TypeExpr
}
