package convert

import (
	"fmt"
	"strings"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/analyzer"
)

const baseInstructions = `
CRITICAL RULES - MUST FOLLOW:
1. Generate code for EXACTLY ONE file - this module ONLY
2. Use CommonJS: const x = require('...') and module.exports
3. Use placeholder requires for dependencies (do NOT generate those files)
4. DO NOT include multiple modules in one file
5. DO NOT add example usage, test code, or extra files
6. DO NOT use ES6 imports (no import/export statements)
7. Start with require statements, end with module.exports, nothing else

OUTPUT STRUCTURE:
- Require statements at top
- Main code (functions/routes/logic)
- module.exports at bottom
- NO markdown, NO explanations, NO other files
`

const controllerInstructions = `
For Controllers (REST endpoints):
- Use: const express = require('express'); const router = express.Router();
- Define routes with: router.get('/path', async (req, res) => {...})
- Include error handling in each route
- End with: module.exports = router;
- Reference service as: const service = require('../services/ServiceName');
`

const serviceInstructions = `
For Services (business logic):
- Define async functions for each operation
- Use: const repository = require('../repositories/RepositoryName');
- Include try-catch for error handling
- End with: module.exports = { functionName1, functionName2, ... };
`

const daoInstructions = `
For DAOs/Repositories (data access):
- Use: const Model = require('../models/ModelName');
- Define async functions for CRUD operations
- Use Sequelize methods: findByPk, findAll, findOne, create, update, destroy
- End with: module.exports = { functionName1, functionName2, ... };
`

// conversionPrompt assembles the strict-rules conversion prompt for one
// chunk of a module.
func conversionPrompt(module analyzer.ModuleInfo, fragment string, chunkIdx, totalChunks int) string {
	var specific string
	switch module.Type {
	case "Controller":
		specific = controllerInstructions
	case "Service":
		specific = serviceInstructions
	case "DAO":
		specific = daoInstructions
	}

	var chunkContext string
	if totalChunks > 1 {
		chunkContext = fmt.Sprintf("\nThis is chunk %d of %d. Focus on converting this portion cleanly.",
			chunkIdx+1, totalChunks)
	}

	return fmt.Sprintf(`%s

%s

JAVA %s TO CONVERT:%s

%s

Generate clean, compilable Node.js code for THIS %s ONLY. No other files.`,
		baseInstructions, specific, strings.ToUpper(module.Type), chunkContext, fragment, module.Type)
}
