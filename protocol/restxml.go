package protocol

import (
	"strconv"
	"strings"

	"github.com/unison-codegen/smithygen/httpbinding"
	"github.com/unison-codegen/smithygen/model"
	"github.com/unison-codegen/smithygen/symbol"
	"github.com/unison-codegen/smithygen/writer"
)

// restXMLGenerator is the fully implemented protocol: REST semantics from the
// @http trait, XML request and response bodies, SigV4 signing. Used by S3,
// CloudFront, Route 53 and SES.
type restXMLGenerator struct{}

func (g *restXMLGenerator) ID() model.ShapeID { return TraitRestXML }
func (g *restXMLGenerator) Name() string      { return "restXml" }

func (g *restXMLGenerator) ContentType(*model.Shape) string { return "application/xml" }

// REST protocols take method and URI from the @http trait, so the defaults
// are empty.
func (g *restXMLGenerator) DefaultMethod() string { return "" }
func (g *restXMLGenerator) DefaultURI() string    { return "" }

func (g *restXMLGenerator) AppliesTo(service *model.Shape) bool {
	return service.HasTrait(TraitRestXML)
}

func (g *restXMLGenerator) GenerateOperation(op *model.Shape, w *writer.Writer, ctx *Context) error {
	opName := symbol.ToFunctionName(op.ID.Name())

	inputType := "()"
	if op.Input != "" && op.Input.Name() != "Unit" {
		inputType = symbol.ToTypeName(op.Input.Name())
	}
	outputType := "()"
	if op.Output != "" && op.Output.Name() != "Unit" {
		outputType = symbol.ToTypeName(op.Output.Name())
	}

	ht, ok := op.HTTPTrait()
	if !ok {
		return &model.ModelError{Shape: op.ID, Reason: "restXml operations require the @http trait"}
	}
	method := ht.Method
	if method == "" {
		method = "GET"
	}
	uri := ht.URI
	if uri == "" {
		uri = "/"
	}

	inputShape, err := ctx.InputShape(op)
	if err != nil {
		return err
	}
	bindings := &httpbinding.BindingSet{}
	if inputShape != nil {
		bindings, err = httpbinding.Classify(inputShape)
		if err != nil {
			return err
		}
	}

	useS3URL := isS3Service(ctx.Service) && hasBucketLabel(bindings.Label)

	w.WriteDocComment(op.ID.Name() + " operation\n\n" +
		"HTTP " + method + " " + uri + "\n" +
		"Raises exception on error, returns output directly on success.")

	// HTTP operations run under {IO, Exception}; Unison has no separate
	// Http ability.
	w.WriteSignature(opName, "Config -> "+inputType+" -> '{IO, Exception} "+outputType)

	w.Write("$L config input =", opName)
	w.Indent()
	w.Write("let")
	w.Indent()

	w.Write("method = \"$L\"", method)

	g.writeURLBuilding(uri, bindings.Label, useS3URL, w)
	g.writeQueryString(bindings.Query, w)
	w.Write("fullUrl = url ++ queryString")
	g.writeRequestHeaders(bindings.Header, w)
	if err := g.writeRequestBody(bindings, ctx, w); err != nil {
		return err
	}

	w.Write("signedHeaders = Aws.signRequest config method fullUrl headers body")
	w.Write("response = Http.request (Http.Request.$L fullUrl signedHeaders body)", strings.ToLower(method))

	w.Dedent()

	w.WriteBlankLine()
	w.Write("-- Check for errors and parse response")
	w.Write("handleHttpResponse response")
	if err := g.writeResponseParsing(op, ctx, w); err != nil {
		return err
	}

	w.Dedent()
	w.WriteBlankLine()
	return nil
}

// writeURLBuilding emits the url binding. Labels substitute in template
// placeholder order, each through Aws.urlEncode; greedy labels keep their
// path separators and encode per segment. S3 bucket addressing delegates to
// the runtime helper instead.
func (g *restXMLGenerator) writeURLBuilding(uri string, labels []*model.Member, useS3URL bool, w *writer.Writer) {
	if useS3URL {
		w.Write("-- S3-specific URL building with bucket routing")
		w.Write("bucket = input.bucket")
		w.Write("key = Optional.getOrElse \"\" input.key")
		w.Write("url = Aws.S3.buildUrl config bucket key")
		return
	}
	tmpl := ParseURITemplate(uri)
	if len(labels) == 0 || !tmpl.HasPlaceholders() {
		w.Write("url = config.endpoint ++ \"$L\"", uri)
		return
	}
	byName := make(map[string]*model.Member, len(labels))
	for _, member := range labels {
		byName[member.Name] = member
	}
	w.Write("baseUri = \"$L\"", uri)
	current := "baseUri"
	step := 0
	for _, placeholder := range tmpl.Placeholders() {
		member, ok := byName[placeholder]
		if !ok {
			continue
		}
		name := symbol.ToFunctionName(member.Name)
		token := "{" + member.Name + "}"
		encode := "Aws.urlEncode"
		if tmpl.IsGreedy(member.Name) {
			token = "{" + member.Name + "+}"
			encode = "Aws.encodePath"
		}
		step++
		next := "uri" + strconv.Itoa(step)
		w.Write("$LValue = input.$L", name, name)
		w.Write("$L = Text.replace \"$L\" ($L $LValue) $L", next, token, encode, name, current)
		current = next
	}
	w.Write("url = config.endpoint ++ $L", current)
}

// writeQueryString emits the query pair list in declared member order.
func (g *restXMLGenerator) writeQueryString(query []*model.Member, w *writer.Writer) {
	if len(query) == 0 {
		w.Write("queryString = \"\"")
		return
	}
	w.Write("-- Build query string from @httpQuery members")
	w.Write("queryParams = [")
	w.Indent()
	for i, member := range query {
		comma := ","
		if i == len(query)-1 {
			comma = ""
		}
		w.Write("(\"$L\", input.$L)$L", httpbinding.QueryName(member), symbol.ToFunctionName(member.Name), comma)
	}
	w.Dedent()
	w.Write("]")
	w.Write("queryString = Aws.buildQueryString queryParams")
}

// writeRequestHeaders emits header assembly. Member headers with empty values
// are filtered after the list is built and before the request is signed.
func (g *restXMLGenerator) writeRequestHeaders(headers []*model.Member, w *writer.Writer) {
	w.Write("-- Build headers from @httpHeader members")
	if len(headers) == 0 {
		w.Write("headers = [(\"Content-Type\", \"application/xml\")]")
		return
	}
	w.Write("baseHeaders = [(\"Content-Type\", \"application/xml\")]")
	w.Write("customHeaders = [")
	w.Indent()
	for i, member := range headers {
		comma := ","
		if i == len(headers)-1 {
			comma = ""
		}
		w.Write("(\"$L\", input.$L)$L", httpbinding.HeaderName(member), symbol.ToFunctionName(member.Name), comma)
	}
	w.Dedent()
	w.Write("]")
	w.Write("headers = baseHeaders ++ (List.filter (cases (_, v) -> not (Text.isEmpty v)) customHeaders)")
}

func (g *restXMLGenerator) writeRequestBody(bindings *httpbinding.BindingSet, ctx *Context, w *writer.Writer) error {
	if bindings.Payload != nil {
		target, err := ctx.Model.ExpectShape(bindings.Payload.Target)
		if err != nil {
			return err
		}
		name := symbol.ToFunctionName(bindings.Payload.Name)
		w.Write("-- @httpPayload: use payload member directly")
		switch {
		case target.Type == model.TypeBlob:
			w.Write("body = input.$L", name)
		case target.Type == model.TypeString:
			w.Write("body = Text.toUtf8 input.$L", name)
		default:
			w.Write("body = Aws.Xml.encode input.$L", name)
		}
		return nil
	}
	if len(bindings.Body) == 0 {
		w.Write("body = Bytes.empty")
		return nil
	}
	w.Write("-- Serialize body members as XML")
	w.Write("body = Aws.Xml.encode input")
	return nil
}

// writeResponseParsing emits the expression producing the output value.
// Outputs binding headers or the status code assemble field by field; pure
// payload or body outputs decode in a single expression.
func (g *restXMLGenerator) writeResponseParsing(op *model.Shape, ctx *Context, w *writer.Writer) error {
	output, err := ctx.OutputShape(op)
	if err != nil {
		return err
	}
	if output == nil {
		w.Write("()")
		return nil
	}

	bindings, err := httpbinding.Classify(output)
	if err != nil {
		return err
	}

	if bindings.HasResponseBindings() {
		w.Write("let")
		w.Indent()

		if len(bindings.Header) > 0 {
			w.Write("-- Extract response headers")
			for _, member := range bindings.Header {
				w.Write("$L = Http.Response.header \"$L\" response |> Optional.getOrElse \"\"",
					symbol.ToFunctionName(member.Name), httpbinding.HeaderName(member))
			}
		}
		if bindings.ResponseCode != nil {
			w.Write("$L = Http.Response.status response |> Http.Status.code",
				symbol.ToFunctionName(bindings.ResponseCode.Name))
		}
		if bindings.Payload != nil {
			if err := g.writePayloadExtraction(bindings.Payload, ctx, w); err != nil {
				return err
			}
		} else if len(bindings.Body) > 0 {
			w.Write("bodyData = Aws.Xml.decode (Http.Response.body response)")
		}

		w.Dedent()
		g.writeResultRecord(output, bindings, w)
		return nil
	}

	if bindings.Payload != nil {
		target, err := ctx.Model.ExpectShape(bindings.Payload.Target)
		if err != nil {
			return err
		}
		outputType := symbol.ToTypeName(output.ID.Name())
		switch {
		case target.Type == model.TypeBlob:
			w.Write("$L.$L (Http.Response.body response)", outputType, outputType)
		case target.Type == model.TypeString:
			w.Write("$L.$L (Bytes.toUtf8 (Http.Response.body response))", outputType, outputType)
		default:
			w.Write("Aws.Xml.decode (Http.Response.body response)")
		}
		return nil
	}

	if len(bindings.Body) == 0 {
		w.Write("-- No body content expected")
		w.Write("$L.default", symbol.ToTypeName(output.ID.Name()))
		return nil
	}
	w.Write("Aws.Xml.decode (Http.Response.body response)")
	return nil
}

func (g *restXMLGenerator) writePayloadExtraction(payload *model.Member, ctx *Context, w *writer.Writer) error {
	target, err := ctx.Model.ExpectShape(payload.Target)
	if err != nil {
		return err
	}
	name := symbol.ToFunctionName(payload.Name)
	switch {
	case target.Type == model.TypeBlob:
		w.Write("$L = Http.Response.body response", name)
	case target.Type == model.TypeString:
		w.Write("$L = Bytes.toUtf8 (Http.Response.body response)", name)
	default:
		w.Write("$L = Aws.Xml.decode (Http.Response.body response)", name)
	}
	return nil
}

// writeResultRecord emits the positional constructor call. Unison records are
// constructed positionally, so arguments follow the output structure's
// declared member order; members without an extracted value default to None.
func (g *restXMLGenerator) writeResultRecord(output *model.Shape, bindings *httpbinding.BindingSet, w *writer.Writer) {
	values := make(map[string]string)
	for _, member := range bindings.Header {
		values[member.Name] = symbol.ToFunctionName(member.Name)
	}
	if bindings.ResponseCode != nil {
		values[bindings.ResponseCode.Name] = symbol.ToFunctionName(bindings.ResponseCode.Name)
	}
	if bindings.Payload != nil {
		values[bindings.Payload.Name] = symbol.ToFunctionName(bindings.Payload.Name)
	} else {
		for _, member := range bindings.Body {
			values[member.Name] = "bodyData." + symbol.ToFunctionName(member.Name)
		}
	}

	outputType := symbol.ToTypeName(output.ID.Name())
	call := outputType + "." + outputType
	for _, member := range output.Members {
		value, ok := values[member.Name]
		if !ok {
			value = "None"
		}
		call += " " + value
	}
	w.Write("$L", call)
}

func (g *restXMLGenerator) GenerateRequestSerializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	inputShape, err := ctx.InputShape(op)
	if err != nil {
		return err
	}
	if inputShape == nil {
		w.WriteComment("No input - empty request body")
		w.Write("body = Bytes.empty")
		return nil
	}
	bindings, err := httpbinding.Classify(inputShape)
	if err != nil {
		return err
	}
	if bindings.Payload != nil {
		w.WriteComment("@httpPayload - serialize payload member")
		return g.writeRequestBody(&httpbinding.BindingSet{Payload: bindings.Payload}, ctx, w)
	}
	if len(bindings.Body) == 0 {
		w.WriteComment("No body members - empty request body")
		w.Write("body = Bytes.empty")
		return nil
	}
	w.WriteComment("Encode body members as XML")
	w.Write("body = Aws.Xml.encode input")
	return nil
}

func (g *restXMLGenerator) GenerateResponseDeserializer(op *model.Shape, w *writer.Writer, ctx *Context) error {
	output, err := ctx.OutputShape(op)
	if err != nil {
		return err
	}
	if output == nil {
		w.WriteComment("No output - return unit")
		w.Write("()")
		return nil
	}
	bindings, err := httpbinding.Classify(output)
	if err != nil {
		return err
	}
	if bindings.Payload != nil {
		target, err := ctx.Model.ExpectShape(bindings.Payload.Target)
		if err != nil {
			return err
		}
		name := symbol.ToFunctionName(bindings.Payload.Name)
		w.WriteComment("@httpPayload - extract payload member")
		switch {
		case target.Type == model.TypeBlob:
			w.Write("{ $L = Http.Response.body response }", name)
		case target.Type == model.TypeString:
			w.Write("{ $L = Bytes.toUtf8 (Http.Response.body response) }", name)
		default:
			w.Write("Aws.Xml.decode (Http.Response.body response)")
		}
		return nil
	}
	if len(bindings.Body) == 0 {
		w.WriteComment("No body content expected - return empty response")
		w.Write("{}")
		return nil
	}
	w.WriteComment("Decode XML response body")
	w.Write("Aws.Xml.decode (Http.Response.body response)")
	return nil
}

func (g *restXMLGenerator) GenerateErrorParser(op *model.Shape, w *writer.Writer, ctx *Context) error {
	errorType := ServiceErrorTypeName(ctx.Service)

	w.WriteDocComment("Parse REST-XML error response")
	w.Write("parseError : Http.Response -> $L", errorType)
	w.Write("parseError response =")
	w.Indent()
	w.Write("errorBody = Bytes.toUtf8 (Http.Response.body response)")
	w.Write("-- Parse XML error: <Error><Code>...</Code><Message>...</Message></Error>")
	w.Write("code = Aws.Xml.extractElement \"Code\" errorBody")
	w.Write("message = Aws.Xml.extractElement \"Message\" errorBody")
	w.Write("$L.fromCodeAndMessage code message", errorType)
	w.Dedent()
	w.WriteBlankLine()
	return nil
}

// UsesBucketAddressing reports whether any operation of an S3-flavored
// service binds a Bucket label, which is what activates virtual-hosted URL
// routing and the S3 runtime module.
func UsesBucketAddressing(service *model.Shape, m *model.Model) bool {
	if !isS3Service(service) {
		return false
	}
	for _, opID := range service.Operations {
		op, ok := m.Shape(opID)
		if !ok || op.Input == "" {
			continue
		}
		input, ok := m.Shape(op.Input)
		if !ok {
			continue
		}
		for i := range input.Members {
			member := &input.Members[i]
			if member.Traits.Has(model.TraitHTTPLabel) && strings.EqualFold(member.Name, "Bucket") {
				return true
			}
		}
	}
	return false
}

// isS3Service matches S3-flavored service names, which get virtual-hosted
// bucket URL routing.
func isS3Service(service *model.Shape) bool {
	name := strings.ToLower(service.ID.Name())
	return strings.Contains(name, "s3") ||
		name == "simplestorage" ||
		name == "simplestorageservice"
}

// hasBucketLabel reports whether a label member is named Bucket, in any case.
func hasBucketLabel(labels []*model.Member) bool {
	for _, member := range labels {
		if strings.EqualFold(member.Name, "Bucket") {
			return true
		}
	}
	return false
}
