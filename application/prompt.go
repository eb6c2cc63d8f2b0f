package application

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/mcpcatalog/domain"
)

// BuildPrompt assembles the single analysis prompt handed to the
// selected backend: repository identity, what was gathered, and where
// the full context and the template shape live on disk.
func BuildPrompt(
	analysisCtx domain.AnalysisContext,
	contextPath string,
	templatePath string,
) string {
	var sb strings.Builder

	sb.WriteString("You are an expert MCP (Model Context Protocol) server analyst. ")
	sb.WriteString("Analyze the gathered repository data and generate a comprehensive, ")
	sb.WriteString("accurate MCP server configuration JSON.\n\n")

	fmt.Fprintf(&sb, "REPOSITORY: %s/%s\n", analysisCtx.Ref.Owner, analysisCtx.Ref.Project)
	fmt.Fprintf(&sb, "URL: %s\n", analysisCtx.Ref.URL)
	fmt.Fprintf(&sb, "SERVER NAME: %s\n", analysisCtx.ServerID)
	fmt.Fprintf(&sb, "KEY FILES GATHERED: %d\n\n", analysisCtx.KeyFileCount)

	sb.WriteString(`ANALYSIS TASK:
1. Review the repository summary, tree structure, and file contents
2. Extract accurate information about tools, resources, and capabilities
3. Determine deployment options and requirements
4. Generate automation recommendations and integration points
5. Create a complete MCP server configuration JSON following the template structure

KEY ANALYSIS AREAS:
- Extract actual tool definitions from source code (tool names, descriptions, parameters)
- Identify resource definitions and URI templates
- Determine authentication requirements and API keys needed
- Analyze package.json for dependencies and deployment info
- Review README for use cases and documentation quality
- Assess deployment options (local, Docker, NPM)
- Generate appropriate automation workflows and triggers

`)

	fmt.Fprintf(&sb, "TEMPLATE REFERENCE: %s\n", templatePath)
	fmt.Fprintf(&sb, "ANALYSIS CONTEXT FILE: %s\n\n", contextPath)

	sb.WriteString(`OUTPUT REQUIREMENTS:
- Return ONLY valid JSON matching the template structure
- Use actual data extracted from repository analysis
- Ensure all tool names, descriptions, and parameters are accurate
- Include realistic use cases based on the code analysis
- Set appropriate deployment configurations based on repository structure

Begin analysis and return the complete JSON configuration:
`)

	return sb.String()
}
