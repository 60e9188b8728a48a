// Package parser implements a hand-rolled recursive-descent parser with
// Pratt-style expression parsing, producing the internal/ast node set from
// an internal/lexer token stream. Grounded on the teacher's parser package
// shape (prefix/infix function tables, precedence lookup, cursor-style
// token advance) and on original_source/src/moonshot.h's parse_* prototype
// surface, which confirms hand-rolled recursive descent as the idiom to
// imitate rather than a parser generator.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-tlc/internal/ast"
	"github.com/cwbudde/go-tlc/internal/lexer"
)

// Operator precedence levels, lowest to highest, following Lua's own
// precedence table (or < and < comparison < concat < sum < product <
// unary < power).
const (
	_ int = iota
	LOWEST
	LOGIC_OR
	LOGIC_AND
	COMPARE
	CONCAT
	SUM
	PRODUCT
	UNARY
	POWER
	CALLINDEX
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       LOGIC_OR,
	lexer.AND:      LOGIC_AND,
	lexer.EQ:       COMPARE,
	lexer.NE:       COMPARE,
	lexer.LT:       COMPARE,
	lexer.LE:       COMPARE,
	lexer.GT:       COMPARE,
	lexer.GE:       COMPARE,
	lexer.CONCAT:   CONCAT,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.STAR:     PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.CARET:    POWER,
	lexer.LPAREN:   CALLINDEX,
	lexer.LBRACKET: CALLINDEX,
	lexer.DOT:      CALLINDEX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds the token stream cursor, the Pratt dispatch tables, and the
// accumulated parse errors.
type Parser struct {
	l *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	errors []*ParserError

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.INT:      p.parsePrimitive,
		lexer.FLOAT:    p.parsePrimitive,
		lexer.STRING:   p.parsePrimitive,
		lexer.TRUE:     p.parsePrimitive,
		lexer.FALSE:    p.parsePrimitive,
		lexer.NIL:      p.parsePrimitive,
		lexer.LPAREN:   p.parseParenExpr,
		lexer.LBRACE:   p.parseTableExpr,
		lexer.MINUS:    p.parseUnary,
		lexer.NOT:      p.parseUnary,
		lexer.HASH:     p.parseUnary,
		lexer.FUNCTION:  p.parseFunctionLiteral,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinary,
		lexer.MINUS:    p.parseBinary,
		lexer.STAR:     p.parseBinary,
		lexer.SLASH:    p.parseBinary,
		lexer.PERCENT:  p.parseBinary,
		lexer.CARET:    p.parseBinary,
		lexer.CONCAT:   p.parseBinary,
		lexer.EQ:       p.parseBinary,
		lexer.NE:       p.parseBinary,
		lexer.LT:       p.parseBinary,
		lexer.LE:       p.parseBinary,
		lexer.GT:       p.parseBinary,
		lexer.GE:       p.parseBinary,
		lexer.AND:      p.parseBinary,
		lexer.OR:       p.parseBinary,
		lexer.LPAREN:   p.parseCall,
		lexer.DOT:      p.parseField,
		lexer.LBRACKET: p.parseSub,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse error recorded while parsing.
func (p *Parser) Errors() []*ParserError { return p.errors }

// LexerErrors returns every lexical error recorded by the underlying lexer.
func (p *Parser) LexerErrors() []lexer.LexerError { return p.l.Errors() }

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peek.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peek.Type))
	return false
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParserError{Message: msg, Pos: p.cur.Pos})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

// parseBlockUntil parses statements until the current token is one of
// terminators (which is left unconsumed for the caller to check/advance
// past).
func (p *Parser) parseBlockUntil(terminators ...lexer.TokenType) *ast.StatementList {
	body := &ast.StatementList{Token: p.cur}
	for !p.curTokenIs(lexer.EOF) && !p.tokenIsOneOf(terminators) {
		stmt := p.parseStatement()
		if stmt != nil {
			body.Statements = append(body.Statements, stmt)
		}
		p.nextToken()
	}
	return body
}

func (p *Parser) tokenIsOneOf(types []lexer.TokenType) bool {
	for _, t := range types {
		if p.curTokenIs(t) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.TYPEDEF:
		return p.parseTypedef()
	case lexer.INTERFACE:
		return p.parseInterfaceDecl()
	case lexer.CLASS:
		return p.parseClassDecl()
	case lexer.VAR:
		return p.parseDefine()
	case lexer.LOCAL:
		return p.parseLocal()
	case lexer.FUNCTION:
		return p.parseFunctionDecl()
	case lexer.DO:
		return p.parseDoBlock()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.REPEAT:
		return p.parseRepeatStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		return &ast.Break{Token: p.cur}
	case lexer.GOTO:
		return p.parseGoto()
	case lexer.DBCOLON:
		return p.parseLabel()
	case lexer.SEMI:
		return nil
	default:
		return p.parseExpressionOrSetStatement()
	}
}

func (p *Parser) parseTypedef() *ast.Typedef {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	alias := p.cur.Literal
	if !p.expectPeek(lexer.ARROW) {
		return nil
	}
	p.nextToken()
	target := p.parseTypeExpr()
	return &ast.Typedef{Token: tok, Alias: alias, Target: target}
}

func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	decl := &ast.InterfaceDecl{Token: tok, Name: p.cur.Literal}
	if p.peekTokenIs(lexer.EXTENDS) {
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return decl
		}
		decl.Parent = p.cur.Literal
	}
	for !p.peekTokenIs(lexer.END) && !p.peekTokenIs(lexer.EOF) {
		p.nextToken()
		if p.curTokenIs(lexer.FUNCTION) {
			if m := p.parseFunctionSignature(); m != nil {
				decl.Methods = append(decl.Methods, m)
			}
		}
	}
	p.expectPeek(lexer.END)
	return decl
}

func (p *Parser) parseFunctionSignature() *ast.FunctionNode {
	tok := p.cur
	fn := &ast.FunctionNode{Token: tok}
	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		fn.Name = &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	}
	if !p.expectPeek(lexer.LPAREN) {
		return fn
	}
	fn.Params = p.parseParamList()
	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		fn.ReturnType = p.parseTypeExpr()
	}
	return fn
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseParam())
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParam())
	}
	if !p.expectPeek(lexer.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	name := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	param := &ast.Param{Name: name}
	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		param.Type = p.parseTypeExpr()
	}
	return param
}

func (p *Parser) parseClassDecl() *ast.ClassDecl {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	decl := &ast.ClassDecl{Token: tok, Name: p.cur.Literal}
	if p.peekTokenIs(lexer.EXTENDS) {
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return decl
		}
		decl.Parent = p.cur.Literal
	}
	if p.peekTokenIs(lexer.IMPLEMENTS) {
		p.nextToken()
		p.nextToken()
		decl.Interfaces = append(decl.Interfaces, p.cur.Literal)
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			decl.Interfaces = append(decl.Interfaces, p.cur.Literal)
		}
	}
	for !p.peekTokenIs(lexer.END) && !p.peekTokenIs(lexer.EOF) {
		p.nextToken()
		member := p.parseStatement()
		if member != nil {
			decl.Members = append(decl.Members, member)
		}
	}
	p.expectPeek(lexer.END)
	return decl
}

func (p *Parser) parseDefine() *ast.Define {
	tok := p.cur
	p.nextToken()
	typ := p.parseTypeExpr()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	def := &ast.Define{Token: tok, Type: typ, Name: name}
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		def.Init = p.parseExpression(LOWEST)
	}
	return def
}

func (p *Parser) parseLocal() *ast.Local {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	loc := &ast.Local{Token: tok, Name: name}
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		loc.Init = p.parseExpression(LOWEST)
	}
	return loc
}

// parseBlockUntil's loop stops with cur already resting on whichever
// terminator matched; finishBlock checks that terminator is the expected
// one without consuming another token (there is nothing further to
// consume: cur already *is* the terminator).
func (p *Parser) finishBlock(want lexer.TokenType) {
	if !p.curTokenIs(want) {
		p.addError(fmt.Sprintf("expected %s to close block, got %s instead", want, p.cur.Type))
	}
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	fn := p.parseFunctionSignature()
	p.nextToken()
	fn.Body = p.parseBlockUntil(lexer.END)
	p.finishBlock(lexer.END)
	return fn
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := p.parseFunctionSignature()
	p.nextToken()
	fn.Body = p.parseBlockUntil(lexer.END)
	p.finishBlock(lexer.END)
	return fn
}

func (p *Parser) parseDoBlock() *ast.DoBlock {
	tok := p.cur
	p.nextToken()
	body := p.parseBlockUntil(lexer.END)
	p.finishBlock(lexer.END)
	return &ast.DoBlock{Token: tok, Body: body}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	tok := p.cur
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.THEN) {
		return nil
	}
	p.nextToken()
	stmt := &ast.IfStmt{Token: tok, Cond: cond}
	stmt.Then = p.parseBlockUntil(lexer.END, lexer.ELSEIF, lexer.ELSE)

	for p.curTokenIs(lexer.ELSEIF) {
		p.nextToken()
		eiCond := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.THEN) {
			break
		}
		p.nextToken()
		eiBody := p.parseBlockUntil(lexer.END, lexer.ELSEIF, lexer.ELSE)
		stmt.ElseIfs = append(stmt.ElseIfs, &ast.ElseIfClause{Cond: eiCond, Body: eiBody})
	}

	if p.curTokenIs(lexer.ELSE) {
		p.nextToken()
		stmt.Else = p.parseBlockUntil(lexer.END)
	}
	return stmt
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.cur
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlockUntil(lexer.END)
	p.finishBlock(lexer.END)
	return &ast.WhileStmt{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseRepeatStmt() *ast.RepeatStmt {
	tok := p.cur
	p.nextToken()
	body := p.parseBlockUntil(lexer.UNTIL)
	p.finishBlock(lexer.UNTIL)
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	return &ast.RepeatStmt{Token: tok, Body: body, Cond: cond}
}

func (p *Parser) parseForStmt() ast.Statement {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	first := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		start := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.COMMA) {
			return nil
		}
		p.nextToken()
		limit := p.parseExpression(LOWEST)
		var step ast.Expression
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			step = p.parseExpression(LOWEST)
		}
		if !p.expectPeek(lexer.DO) {
			return nil
		}
		p.nextToken()
		body := p.parseBlockUntil(lexer.END)
		p.finishBlock(lexer.END)
		return &ast.ForNumeric{Token: tok, Var: first, Start: start, Limit: limit, Step: step, Body: body}
	}

	names := &ast.LeftTuple{Names: []*ast.Identifier{first}}
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		names.Names = append(names.Names, &ast.Identifier{Token: p.cur, Name: p.cur.Literal})
	}
	if !p.expectPeek(lexer.IN) {
		return nil
	}
	p.nextToken()
	source := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlockUntil(lexer.END)
	p.finishBlock(lexer.END)
	return &ast.ForIn{Token: tok, Names: names, Source: source, Body: body}
}

func (p *Parser) parseReturn() *ast.Return {
	tok := p.cur
	ret := &ast.Return{Token: tok}
	if !p.peekTokenIs(lexer.END) && !p.peekTokenIs(lexer.ELSE) && !p.peekTokenIs(lexer.ELSEIF) &&
		!p.peekTokenIs(lexer.UNTIL) && !p.peekTokenIs(lexer.EOF) && !p.peekTokenIs(lexer.SEMI) {
		p.nextToken()
		ret.Value = p.parseExpression(LOWEST)
	}
	return ret
}

func (p *Parser) parseGoto() *ast.Goto {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	return &ast.Goto{Token: tok, Name: p.cur.Literal}
}

func (p *Parser) parseLabel() *ast.Label {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.cur.Literal
	p.expectPeek(lexer.DBCOLON)
	return &ast.Label{Token: tok, Name: name}
}

// parseExpressionOrSetStatement parses a leading expression and, if
// followed by '=', turns it into a Set statement; otherwise it is an
// ExpressionStatement (normally a Call).
func (p *Parser) parseExpressionOrSetStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		rhs := p.parseExpression(LOWEST)
		return &ast.Set{Token: tok, LHS: expr, RHS: rhs}
	}
	return &ast.ExpressionStatement{Token: tok, Expr: expr}
}

// --- expressions ---

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.addError(fmt.Sprintf("no prefix parse function for %s", p.cur.Type))
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMI) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
}

func (p *Parser) parsePrimitive() ast.Expression {
	typeName := "any"
	switch p.cur.Type {
	case lexer.INT:
		typeName = "int"
	case lexer.FLOAT:
		typeName = "num"
	case lexer.STRING:
		typeName = "string"
	case lexer.TRUE, lexer.FALSE:
		typeName = "bool"
	case lexer.NIL:
		typeName = "nil"
	}
	text := p.cur.Literal
	if p.cur.Type == lexer.STRING {
		text = strconv.Quote(p.cur.Literal)
	}
	return &ast.Primitive{Token: p.cur, Text: text, TypeName: typeName}
}

func (p *Parser) parseParenExpr() ast.Expression {
	tok := p.cur
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return inner
	}
	return &ast.Paren{Token: tok, Inner: inner}
}

func (p *Parser) parseTableExpr() ast.Expression {
	tok := p.cur
	table := &ast.Table{Token: tok}
	if p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		return table
	}
	p.nextToken()
	p.parseTableEntry(table)
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		p.parseTableEntry(table)
	}
	if !p.expectPeek(lexer.RBRACE) {
		return table
	}
	return table
}

func (p *Parser) parseTableEntry(table *ast.Table) {
	if p.curTokenIs(lexer.IDENT) && p.peekTokenIs(lexer.ASSIGN) {
		key := p.cur.Literal
		p.nextToken()
		p.nextToken()
		table.Keys = append(table.Keys, key)
		table.Values = append(table.Values, p.parseExpression(LOWEST))
		return
	}
	table.Keys = append(table.Keys, "")
	table.Values = append(table.Values, p.parseExpression(LOWEST))
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.cur
	op := p.cur.Literal
	if op == "" {
		op = p.cur.Type.String()
	}
	p.nextToken()
	operand := p.parseExpression(UNARY)
	return &ast.Unary{Token: tok, Op: op, Operand: operand}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.cur
	op := tok.Literal
	if op == "" {
		op = tok.Type.String()
	}
	precedence := p.curPrecedence()
	p.nextToken()
	// ^ and .. are right-associative: parse the RHS at one level lower
	// precedence so a ^ b ^ c groups as a ^ (b ^ c).
	rightPrec := precedence
	if tok.Type == lexer.CARET || tok.Type == lexer.CONCAT {
		rightPrec--
	}
	right := p.parseExpression(rightPrec)
	return &ast.Binary{Token: tok, Op: op, Left: left, Right: right}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	tok := p.cur
	call := &ast.Call{Token: tok, Callee: callee}
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return call
	}
	args := &ast.TupleExpr{Token: p.peek}
	p.nextToken()
	args.Elems = append(args.Elems, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		args.Elems = append(args.Elems, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(lexer.RPAREN) {
		return call
	}
	call.Args = args
	return call
}

func (p *Parser) parseField(base ast.Expression) ast.Expression {
	tok := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return base
	}
	return &ast.Field{Token: tok, Base: base, Name: p.cur.Literal}
}

func (p *Parser) parseSub(base ast.Expression) ast.Expression {
	tok := p.cur
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return base
	}
	return &ast.Sub{Token: tok, Base: base, Index: index}
}

// --- type expressions ---

// parseTypeExpr parses a type annotation: "any", a bare name, a
// parenthesized tuple, or a function type written "<returnType>(<args>)"
// (matching ast.FuncTypeExpr.String()).
func (p *Parser) parseTypeExpr() ast.TypeNode {
	var base ast.TypeNode
	switch p.cur.Type {
	case lexer.IDENT:
		if p.cur.Literal == "any" {
			base = &ast.AnyTypeExpr{Token: p.cur}
		} else {
			base = &ast.BasicTypeExpr{Token: p.cur, Name: p.cur.Literal}
		}
	case lexer.LPAREN:
		tok := p.cur
		var elems []ast.TypeNode
		if p.peekTokenIs(lexer.RPAREN) {
			p.nextToken()
		} else {
			p.nextToken()
			elems = append(elems, p.parseTypeExpr())
			for p.peekTokenIs(lexer.COMMA) {
				p.nextToken()
				p.nextToken()
				elems = append(elems, p.parseTypeExpr())
			}
			if !p.expectPeek(lexer.RPAREN) {
				return &ast.TupleTypeExpr{Token: tok, Elems: elems}
			}
		}
		base = &ast.TupleTypeExpr{Token: tok, Elems: elems}
	default:
		p.addError(fmt.Sprintf("expected a type, got %s", p.cur.Type))
		return nil
	}

	if p.peekTokenIs(lexer.LPAREN) {
		tok := p.peek
		p.nextToken()
		var args []ast.TypeNode
		if p.peekTokenIs(lexer.RPAREN) {
			p.nextToken()
		} else {
			p.nextToken()
			args = append(args, p.parseTypeExpr())
			for p.peekTokenIs(lexer.COMMA) {
				p.nextToken()
				p.nextToken()
				args = append(args, p.parseTypeExpr())
			}
			p.expectPeek(lexer.RPAREN)
		}
		return &ast.FuncTypeExpr{Token: tok, Return: base, Args: args}
	}
	return base
}
