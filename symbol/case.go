package symbol

import "strings"

// ToTypeName converts a shape name to the Unison type convention. Smithy
// shape names are already PascalCase, so the declared casing is preserved.
// Empty input stays empty.
func ToTypeName(name string) string {
	return name
}

// ToFunctionName converts a shape name to the Unison function convention:
// the first character is lower-cased, the rest preserved. Empty input stays
// empty.
func ToFunctionName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// ToEnumVariant renders an enum variant in Unison's TypeName'VariantName
// form, e.g. "BucketLocation'UsEast1".
func ToEnumVariant(typeName, variantName string) string {
	return typeName + "'" + variantName
}

// ToNamespacedTypeName prefixes a type name with the client namespace, e.g.
// ("Config", "Aws.S3") -> "Aws.S3.Config".
func ToNamespacedTypeName(name, namespace string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// ToNamespacedFunctionName prefixes a function name with the client
// namespace after applying the function-name case rule.
func ToNamespacedFunctionName(name, namespace string) string {
	fn := ToFunctionName(name)
	if namespace == "" {
		return fn
	}
	return namespace + "." + fn
}

// ToVariantName converts an enum wire value into a PascalCase variant name:
// "af-south-1" -> "AfSouth1", "STANDARD" -> "Standard". Used when a Smithy
// 1.0 enum definition carries no explicit name.
func ToVariantName(wireValue string) string {
	var b strings.Builder
	capitalizeNext := true
	for _, c := range wireValue {
		switch {
		case c == '-' || c == '_' || c == ' ':
			capitalizeNext = true
		case c >= '0' && c <= '9':
			b.WriteRune(c)
			capitalizeNext = true
		case capitalizeNext:
			b.WriteString(strings.ToUpper(string(c)))
			capitalizeNext = false
		default:
			b.WriteString(strings.ToLower(string(c)))
		}
	}
	return b.String()
}

// FileBaseName converts a namespace into the output file base name, with
// dots replaced by underscores: "aws.s3" -> "aws_s3".
func FileBaseName(namespace string) string {
	return strings.ReplaceAll(namespace, ".", "_")
}
