package token

// KeywordKind classifies keywords by where the grammar accepts them as names.
type KeywordKind uint8

// Keyword categories.
const (
	NoKeyword KeywordKind = iota
	UnreservedKeyword
	ColNameKeyword
	TypeFuncNameKeyword
	ReservedKeyword
)

var keywordKindNames = [...]string{
	NoKeyword:           "NO_KEYWORD",
	UnreservedKeyword:   "UNRESERVED_KEYWORD",
	ColNameKeyword:      "COL_NAME_KEYWORD",
	TypeFuncNameKeyword: "TYPE_FUNC_NAME_KEYWORD",
	ReservedKeyword:     "RESERVED_KEYWORD",
}

func (k KeywordKind) String() string {
	if int(k) < len(keywordKindNames) {
		return keywordKindNames[k]
	}
	return "NO_KEYWORD"
}

// Keyword describes one entry of the keyword table.
type Keyword struct {
	Name  string // lower case spelling
	Token string // grammar symbol name
	Kind  Kind
	Class KeywordKind
	// BareLabel is false for keywords that need AS when used as a column alias.
	BareLabel bool
}

const (
	unres    = UnreservedKeyword
	colname  = ColNameKeyword
	typefunc = TypeFuncNameKeyword
	reserved = ReservedKeyword
)

// keywords is sorted by name; the Kind of entry i is keywordBase+i.
var keywords = [...]Keyword{
	{Name: "abort", Token: "ABORT_P", Class: unres},
	{Name: "absent", Token: "ABSENT", Class: unres},
	{Name: "absolute", Token: "ABSOLUTE_P", Class: unres},
	{Name: "access", Token: "ACCESS", Class: unres},
	{Name: "action", Token: "ACTION", Class: unres},
	{Name: "add", Token: "ADD_P", Class: unres},
	{Name: "admin", Token: "ADMIN", Class: unres},
	{Name: "after", Token: "AFTER", Class: unres},
	{Name: "aggregate", Token: "AGGREGATE", Class: unres},
	{Name: "all", Token: "ALL", Class: reserved},
	{Name: "also", Token: "ALSO", Class: unres},
	{Name: "alter", Token: "ALTER", Class: unres},
	{Name: "always", Token: "ALWAYS", Class: unres},
	{Name: "analyse", Token: "ANALYSE", Class: reserved},
	{Name: "analyze", Token: "ANALYZE", Class: reserved},
	{Name: "and", Token: "AND", Class: reserved},
	{Name: "any", Token: "ANY", Class: reserved},
	{Name: "array", Token: "ARRAY", Class: reserved},
	{Name: "as", Token: "AS", Class: reserved},
	{Name: "asc", Token: "ASC", Class: reserved},
	{Name: "asensitive", Token: "ASENSITIVE", Class: unres},
	{Name: "assertion", Token: "ASSERTION", Class: unres},
	{Name: "assignment", Token: "ASSIGNMENT", Class: unres},
	{Name: "asymmetric", Token: "ASYMMETRIC", Class: reserved},
	{Name: "at", Token: "AT", Class: unres},
	{Name: "atomic", Token: "ATOMIC", Class: unres},
	{Name: "attach", Token: "ATTACH", Class: unres},
	{Name: "attribute", Token: "ATTRIBUTE", Class: unres},
	{Name: "authorization", Token: "AUTHORIZATION", Class: typefunc},
	{Name: "backward", Token: "BACKWARD", Class: unres},
	{Name: "before", Token: "BEFORE", Class: unres},
	{Name: "begin", Token: "BEGIN_P", Class: unres},
	{Name: "between", Token: "BETWEEN", Class: colname},
	{Name: "bigint", Token: "BIGINT", Class: colname},
	{Name: "binary", Token: "BINARY", Class: typefunc},
	{Name: "bit", Token: "BIT", Class: colname},
	{Name: "boolean", Token: "BOOLEAN_P", Class: colname},
	{Name: "both", Token: "BOTH", Class: reserved},
	{Name: "breadth", Token: "BREADTH", Class: unres},
	{Name: "by", Token: "BY", Class: unres},
	{Name: "cache", Token: "CACHE", Class: unres},
	{Name: "call", Token: "CALL", Class: unres},
	{Name: "called", Token: "CALLED", Class: unres},
	{Name: "cascade", Token: "CASCADE", Class: unres},
	{Name: "cascaded", Token: "CASCADED", Class: unres},
	{Name: "case", Token: "CASE", Class: reserved},
	{Name: "cast", Token: "CAST", Class: reserved},
	{Name: "catalog", Token: "CATALOG_P", Class: unres},
	{Name: "chain", Token: "CHAIN", Class: unres},
	{Name: "char", Token: "CHAR_P", Class: colname},
	{Name: "character", Token: "CHARACTER", Class: colname},
	{Name: "characteristics", Token: "CHARACTERISTICS", Class: unres},
	{Name: "check", Token: "CHECK", Class: reserved},
	{Name: "checkpoint", Token: "CHECKPOINT", Class: unres},
	{Name: "class", Token: "CLASS", Class: unres},
	{Name: "close", Token: "CLOSE", Class: unres},
	{Name: "cluster", Token: "CLUSTER", Class: unres},
	{Name: "coalesce", Token: "COALESCE", Class: colname},
	{Name: "collate", Token: "COLLATE", Class: reserved},
	{Name: "collation", Token: "COLLATION", Class: typefunc},
	{Name: "column", Token: "COLUMN", Class: reserved},
	{Name: "columns", Token: "COLUMNS", Class: unres},
	{Name: "comment", Token: "COMMENT", Class: unres},
	{Name: "comments", Token: "COMMENTS", Class: unres},
	{Name: "commit", Token: "COMMIT", Class: unres},
	{Name: "committed", Token: "COMMITTED", Class: unres},
	{Name: "compression", Token: "COMPRESSION", Class: unres},
	{Name: "concurrently", Token: "CONCURRENTLY", Class: typefunc},
	{Name: "configuration", Token: "CONFIGURATION", Class: unres},
	{Name: "conflict", Token: "CONFLICT", Class: unres},
	{Name: "connection", Token: "CONNECTION", Class: unres},
	{Name: "constraint", Token: "CONSTRAINT", Class: reserved},
	{Name: "constraints", Token: "CONSTRAINTS", Class: unres},
	{Name: "content", Token: "CONTENT_P", Class: unres},
	{Name: "continue", Token: "CONTINUE_P", Class: unres},
	{Name: "conversion", Token: "CONVERSION_P", Class: unres},
	{Name: "copy", Token: "COPY", Class: unres},
	{Name: "cost", Token: "COST", Class: unres},
	{Name: "create", Token: "CREATE", Class: reserved},
	{Name: "cross", Token: "CROSS", Class: typefunc},
	{Name: "csv", Token: "CSV", Class: unres},
	{Name: "cube", Token: "CUBE", Class: unres},
	{Name: "current", Token: "CURRENT_P", Class: unres},
	{Name: "current_catalog", Token: "CURRENT_CATALOG", Class: reserved},
	{Name: "current_date", Token: "CURRENT_DATE", Class: reserved},
	{Name: "current_role", Token: "CURRENT_ROLE", Class: reserved},
	{Name: "current_schema", Token: "CURRENT_SCHEMA", Class: typefunc},
	{Name: "current_time", Token: "CURRENT_TIME", Class: reserved},
	{Name: "current_timestamp", Token: "CURRENT_TIMESTAMP", Class: reserved},
	{Name: "current_user", Token: "CURRENT_USER", Class: reserved},
	{Name: "cursor", Token: "CURSOR", Class: unres},
	{Name: "cycle", Token: "CYCLE", Class: unres},
	{Name: "data", Token: "DATA_P", Class: unres},
	{Name: "database", Token: "DATABASE", Class: unres},
	{Name: "day", Token: "DAY_P", Class: unres},
	{Name: "deallocate", Token: "DEALLOCATE", Class: unres},
	{Name: "dec", Token: "DEC", Class: colname},
	{Name: "decimal", Token: "DECIMAL_P", Class: colname},
	{Name: "declare", Token: "DECLARE", Class: unres},
	{Name: "default", Token: "DEFAULT", Class: reserved},
	{Name: "defaults", Token: "DEFAULTS", Class: unres},
	{Name: "deferrable", Token: "DEFERRABLE", Class: reserved},
	{Name: "deferred", Token: "DEFERRED", Class: unres},
	{Name: "definer", Token: "DEFINER", Class: unres},
	{Name: "delete", Token: "DELETE_P", Class: unres},
	{Name: "delimiter", Token: "DELIMITER", Class: unres},
	{Name: "delimiters", Token: "DELIMITERS", Class: unres},
	{Name: "depends", Token: "DEPENDS", Class: unres},
	{Name: "depth", Token: "DEPTH", Class: unres},
	{Name: "desc", Token: "DESC", Class: reserved},
	{Name: "detach", Token: "DETACH", Class: unres},
	{Name: "dictionary", Token: "DICTIONARY", Class: unres},
	{Name: "disable", Token: "DISABLE_P", Class: unres},
	{Name: "discard", Token: "DISCARD", Class: unres},
	{Name: "distinct", Token: "DISTINCT", Class: reserved},
	{Name: "do", Token: "DO", Class: reserved},
	{Name: "document", Token: "DOCUMENT_P", Class: unres},
	{Name: "domain", Token: "DOMAIN_P", Class: unres},
	{Name: "double", Token: "DOUBLE_P", Class: unres},
	{Name: "drop", Token: "DROP", Class: unres},
	{Name: "each", Token: "EACH", Class: unres},
	{Name: "else", Token: "ELSE", Class: reserved},
	{Name: "enable", Token: "ENABLE_P", Class: unres},
	{Name: "encoding", Token: "ENCODING", Class: unres},
	{Name: "encrypted", Token: "ENCRYPTED", Class: unres},
	{Name: "end", Token: "END_P", Class: reserved},
	{Name: "enum", Token: "ENUM_P", Class: unres},
	{Name: "escape", Token: "ESCAPE", Class: unres},
	{Name: "event", Token: "EVENT", Class: unres},
	{Name: "except", Token: "EXCEPT", Class: reserved},
	{Name: "exclude", Token: "EXCLUDE", Class: unres},
	{Name: "excluding", Token: "EXCLUDING", Class: unres},
	{Name: "exclusive", Token: "EXCLUSIVE", Class: unres},
	{Name: "execute", Token: "EXECUTE", Class: unres},
	{Name: "exists", Token: "EXISTS", Class: colname},
	{Name: "explain", Token: "EXPLAIN", Class: unres},
	{Name: "expression", Token: "EXPRESSION", Class: unres},
	{Name: "extension", Token: "EXTENSION", Class: unres},
	{Name: "external", Token: "EXTERNAL", Class: unres},
	{Name: "extract", Token: "EXTRACT", Class: colname},
	{Name: "false", Token: "FALSE_P", Class: reserved},
	{Name: "family", Token: "FAMILY", Class: unres},
	{Name: "fetch", Token: "FETCH", Class: reserved},
	{Name: "filter", Token: "FILTER", Class: unres},
	{Name: "finalize", Token: "FINALIZE", Class: unres},
	{Name: "first", Token: "FIRST_P", Class: unres},
	{Name: "float", Token: "FLOAT_P", Class: colname},
	{Name: "following", Token: "FOLLOWING", Class: unres},
	{Name: "for", Token: "FOR", Class: reserved},
	{Name: "force", Token: "FORCE", Class: unres},
	{Name: "foreign", Token: "FOREIGN", Class: reserved},
	{Name: "format", Token: "FORMAT", Class: unres},
	{Name: "forward", Token: "FORWARD", Class: unres},
	{Name: "freeze", Token: "FREEZE", Class: typefunc},
	{Name: "from", Token: "FROM", Class: reserved},
	{Name: "full", Token: "FULL", Class: typefunc},
	{Name: "function", Token: "FUNCTION", Class: unres},
	{Name: "functions", Token: "FUNCTIONS", Class: unres},
	{Name: "generated", Token: "GENERATED", Class: unres},
	{Name: "global", Token: "GLOBAL", Class: unres},
	{Name: "grant", Token: "GRANT", Class: reserved},
	{Name: "granted", Token: "GRANTED", Class: unres},
	{Name: "greatest", Token: "GREATEST", Class: colname},
	{Name: "group", Token: "GROUP_P", Class: reserved},
	{Name: "grouping", Token: "GROUPING", Class: colname},
	{Name: "groups", Token: "GROUPS", Class: unres},
	{Name: "handler", Token: "HANDLER", Class: unres},
	{Name: "having", Token: "HAVING", Class: reserved},
	{Name: "header", Token: "HEADER_P", Class: unres},
	{Name: "hold", Token: "HOLD", Class: unres},
	{Name: "hour", Token: "HOUR_P", Class: unres},
	{Name: "identity", Token: "IDENTITY_P", Class: unres},
	{Name: "if", Token: "IF_P", Class: unres},
	{Name: "ilike", Token: "ILIKE", Class: typefunc},
	{Name: "immediate", Token: "IMMEDIATE", Class: unres},
	{Name: "immutable", Token: "IMMUTABLE", Class: unres},
	{Name: "implicit", Token: "IMPLICIT_P", Class: unres},
	{Name: "import", Token: "IMPORT_P", Class: unres},
	{Name: "in", Token: "IN_P", Class: reserved},
	{Name: "include", Token: "INCLUDE", Class: unres},
	{Name: "including", Token: "INCLUDING", Class: unres},
	{Name: "increment", Token: "INCREMENT", Class: unres},
	{Name: "indent", Token: "INDENT", Class: unres},
	{Name: "index", Token: "INDEX", Class: unres},
	{Name: "indexes", Token: "INDEXES", Class: unres},
	{Name: "inherit", Token: "INHERIT", Class: unres},
	{Name: "inherits", Token: "INHERITS", Class: unres},
	{Name: "initially", Token: "INITIALLY", Class: reserved},
	{Name: "inline", Token: "INLINE_P", Class: unres},
	{Name: "inner", Token: "INNER_P", Class: typefunc},
	{Name: "inout", Token: "INOUT", Class: colname},
	{Name: "input", Token: "INPUT", Class: unres},
	{Name: "insensitive", Token: "INSENSITIVE", Class: unres},
	{Name: "insert", Token: "INSERT", Class: unres},
	{Name: "instead", Token: "INSTEAD", Class: unres},
	{Name: "int", Token: "INT", Class: colname},
	{Name: "integer", Token: "INTEGER", Class: colname},
	{Name: "intersect", Token: "INTERSECT", Class: reserved},
	{Name: "interval", Token: "INTERVAL", Class: colname},
	{Name: "into", Token: "INTO", Class: reserved},
	{Name: "invoker", Token: "INVOKER", Class: unres},
	{Name: "is", Token: "IS", Class: typefunc},
	{Name: "isnull", Token: "ISNULL", Class: typefunc},
	{Name: "isolation", Token: "ISOLATION", Class: unres},
	{Name: "join", Token: "JOIN", Class: typefunc},
	{Name: "json", Token: "JSON", Class: colname},
	{Name: "json_array", Token: "JSON_ARRAY", Class: colname},
	{Name: "json_arrayagg", Token: "JSON_ARRAYAGG", Class: colname},
	{Name: "json_object", Token: "JSON_OBJECT", Class: colname},
	{Name: "json_objectagg", Token: "JSON_OBJECTAGG", Class: colname},
	{Name: "key", Token: "KEY", Class: unres},
	{Name: "keys", Token: "KEYS", Class: unres},
	{Name: "label", Token: "LABEL", Class: unres},
	{Name: "language", Token: "LANGUAGE", Class: unres},
	{Name: "large", Token: "LARGE_P", Class: unres},
	{Name: "last", Token: "LAST_P", Class: unres},
	{Name: "lateral", Token: "LATERAL_P", Class: reserved},
	{Name: "leading", Token: "LEADING", Class: reserved},
	{Name: "leakproof", Token: "LEAKPROOF", Class: unres},
	{Name: "least", Token: "LEAST", Class: colname},
	{Name: "left", Token: "LEFT", Class: typefunc},
	{Name: "level", Token: "LEVEL", Class: unres},
	{Name: "like", Token: "LIKE", Class: typefunc},
	{Name: "limit", Token: "LIMIT", Class: reserved},
	{Name: "listen", Token: "LISTEN", Class: unres},
	{Name: "load", Token: "LOAD", Class: unres},
	{Name: "local", Token: "LOCAL", Class: unres},
	{Name: "localtime", Token: "LOCALTIME", Class: reserved},
	{Name: "localtimestamp", Token: "LOCALTIMESTAMP", Class: reserved},
	{Name: "location", Token: "LOCATION", Class: unres},
	{Name: "lock", Token: "LOCK_P", Class: unres},
	{Name: "locked", Token: "LOCKED", Class: unres},
	{Name: "logged", Token: "LOGGED", Class: unres},
	{Name: "mapping", Token: "MAPPING", Class: unres},
	{Name: "match", Token: "MATCH", Class: unres},
	{Name: "matched", Token: "MATCHED", Class: unres},
	{Name: "materialized", Token: "MATERIALIZED", Class: unres},
	{Name: "maxvalue", Token: "MAXVALUE", Class: unres},
	{Name: "merge", Token: "MERGE", Class: unres},
	{Name: "method", Token: "METHOD", Class: unres},
	{Name: "minute", Token: "MINUTE_P", Class: unres},
	{Name: "minvalue", Token: "MINVALUE", Class: unres},
	{Name: "mode", Token: "MODE", Class: unres},
	{Name: "month", Token: "MONTH_P", Class: unres},
	{Name: "move", Token: "MOVE", Class: unres},
	{Name: "name", Token: "NAME_P", Class: unres},
	{Name: "names", Token: "NAMES", Class: unres},
	{Name: "national", Token: "NATIONAL", Class: colname},
	{Name: "natural", Token: "NATURAL", Class: typefunc},
	{Name: "nchar", Token: "NCHAR", Class: colname},
	{Name: "new", Token: "NEW", Class: unres},
	{Name: "next", Token: "NEXT", Class: unres},
	{Name: "nfc", Token: "NFC", Class: unres},
	{Name: "nfd", Token: "NFD", Class: unres},
	{Name: "nfkc", Token: "NFKC", Class: unres},
	{Name: "nfkd", Token: "NFKD", Class: unres},
	{Name: "no", Token: "NO", Class: unres},
	{Name: "none", Token: "NONE", Class: colname},
	{Name: "normalize", Token: "NORMALIZE", Class: colname},
	{Name: "normalized", Token: "NORMALIZED", Class: unres},
	{Name: "not", Token: "NOT", Class: reserved},
	{Name: "nothing", Token: "NOTHING", Class: unres},
	{Name: "notify", Token: "NOTIFY", Class: unres},
	{Name: "notnull", Token: "NOTNULL", Class: typefunc},
	{Name: "nowait", Token: "NOWAIT", Class: unres},
	{Name: "null", Token: "NULL_P", Class: reserved},
	{Name: "nullif", Token: "NULLIF", Class: colname},
	{Name: "nulls", Token: "NULLS_P", Class: unres},
	{Name: "numeric", Token: "NUMERIC", Class: colname},
	{Name: "object", Token: "OBJECT_P", Class: unres},
	{Name: "of", Token: "OF", Class: unres},
	{Name: "off", Token: "OFF", Class: unres},
	{Name: "offset", Token: "OFFSET", Class: reserved},
	{Name: "oids", Token: "OIDS", Class: unres},
	{Name: "old", Token: "OLD", Class: unres},
	{Name: "on", Token: "ON", Class: reserved},
	{Name: "only", Token: "ONLY", Class: reserved},
	{Name: "operator", Token: "OPERATOR", Class: unres},
	{Name: "option", Token: "OPTION", Class: unres},
	{Name: "options", Token: "OPTIONS", Class: unres},
	{Name: "or", Token: "OR", Class: reserved},
	{Name: "order", Token: "ORDER", Class: reserved},
	{Name: "ordinality", Token: "ORDINALITY", Class: unres},
	{Name: "others", Token: "OTHERS", Class: unres},
	{Name: "out", Token: "OUT_P", Class: colname},
	{Name: "outer", Token: "OUTER_P", Class: typefunc},
	{Name: "over", Token: "OVER", Class: unres},
	{Name: "overlaps", Token: "OVERLAPS", Class: typefunc},
	{Name: "overlay", Token: "OVERLAY", Class: colname},
	{Name: "overriding", Token: "OVERRIDING", Class: unres},
	{Name: "owned", Token: "OWNED", Class: unres},
	{Name: "owner", Token: "OWNER", Class: unres},
	{Name: "parallel", Token: "PARALLEL", Class: unres},
	{Name: "parameter", Token: "PARAMETER", Class: unres},
	{Name: "parser", Token: "PARSER", Class: unres},
	{Name: "partial", Token: "PARTIAL", Class: unres},
	{Name: "partition", Token: "PARTITION", Class: unres},
	{Name: "passing", Token: "PASSING", Class: unres},
	{Name: "password", Token: "PASSWORD", Class: unres},
	{Name: "placing", Token: "PLACING", Class: reserved},
	{Name: "plans", Token: "PLANS", Class: unres},
	{Name: "policy", Token: "POLICY", Class: unres},
	{Name: "position", Token: "POSITION", Class: colname},
	{Name: "preceding", Token: "PRECEDING", Class: unres},
	{Name: "precision", Token: "PRECISION", Class: colname},
	{Name: "prepare", Token: "PREPARE", Class: unres},
	{Name: "prepared", Token: "PREPARED", Class: unres},
	{Name: "preserve", Token: "PRESERVE", Class: unres},
	{Name: "primary", Token: "PRIMARY", Class: reserved},
	{Name: "prior", Token: "PRIOR", Class: unres},
	{Name: "privileges", Token: "PRIVILEGES", Class: unres},
	{Name: "procedural", Token: "PROCEDURAL", Class: unres},
	{Name: "procedure", Token: "PROCEDURE", Class: unres},
	{Name: "procedures", Token: "PROCEDURES", Class: unres},
	{Name: "program", Token: "PROGRAM", Class: unres},
	{Name: "publication", Token: "PUBLICATION", Class: unres},
	{Name: "quote", Token: "QUOTE", Class: unres},
	{Name: "range", Token: "RANGE", Class: unres},
	{Name: "read", Token: "READ", Class: unres},
	{Name: "real", Token: "REAL", Class: colname},
	{Name: "reassign", Token: "REASSIGN", Class: unres},
	{Name: "recheck", Token: "RECHECK", Class: unres},
	{Name: "recursive", Token: "RECURSIVE", Class: unres},
	{Name: "ref", Token: "REF_P", Class: unres},
	{Name: "references", Token: "REFERENCES", Class: reserved},
	{Name: "referencing", Token: "REFERENCING", Class: unres},
	{Name: "refresh", Token: "REFRESH", Class: unres},
	{Name: "reindex", Token: "REINDEX", Class: unres},
	{Name: "relative", Token: "RELATIVE_P", Class: unres},
	{Name: "release", Token: "RELEASE", Class: unres},
	{Name: "rename", Token: "RENAME", Class: unres},
	{Name: "repeatable", Token: "REPEATABLE", Class: unres},
	{Name: "replace", Token: "REPLACE", Class: unres},
	{Name: "replica", Token: "REPLICA", Class: unres},
	{Name: "reset", Token: "RESET", Class: unres},
	{Name: "restart", Token: "RESTART", Class: unres},
	{Name: "restrict", Token: "RESTRICT", Class: unres},
	{Name: "return", Token: "RETURN", Class: unres},
	{Name: "returning", Token: "RETURNING", Class: reserved},
	{Name: "returns", Token: "RETURNS", Class: unres},
	{Name: "revoke", Token: "REVOKE", Class: unres},
	{Name: "right", Token: "RIGHT", Class: typefunc},
	{Name: "role", Token: "ROLE", Class: unres},
	{Name: "rollback", Token: "ROLLBACK", Class: unres},
	{Name: "rollup", Token: "ROLLUP", Class: unres},
	{Name: "routine", Token: "ROUTINE", Class: unres},
	{Name: "routines", Token: "ROUTINES", Class: unres},
	{Name: "row", Token: "ROW", Class: colname},
	{Name: "rows", Token: "ROWS", Class: unres},
	{Name: "rule", Token: "RULE", Class: unres},
	{Name: "savepoint", Token: "SAVEPOINT", Class: unres},
	{Name: "scalar", Token: "SCALAR", Class: unres},
	{Name: "schema", Token: "SCHEMA", Class: unres},
	{Name: "schemas", Token: "SCHEMAS", Class: unres},
	{Name: "scroll", Token: "SCROLL", Class: unres},
	{Name: "search", Token: "SEARCH", Class: unres},
	{Name: "second", Token: "SECOND_P", Class: unres},
	{Name: "security", Token: "SECURITY", Class: unres},
	{Name: "select", Token: "SELECT", Class: reserved},
	{Name: "sequence", Token: "SEQUENCE", Class: unres},
	{Name: "sequences", Token: "SEQUENCES", Class: unres},
	{Name: "serializable", Token: "SERIALIZABLE", Class: unres},
	{Name: "server", Token: "SERVER", Class: unres},
	{Name: "session", Token: "SESSION", Class: unres},
	{Name: "session_user", Token: "SESSION_USER", Class: reserved},
	{Name: "set", Token: "SET", Class: unres},
	{Name: "setof", Token: "SETOF", Class: colname},
	{Name: "sets", Token: "SETS", Class: unres},
	{Name: "share", Token: "SHARE", Class: unres},
	{Name: "show", Token: "SHOW", Class: unres},
	{Name: "similar", Token: "SIMILAR", Class: typefunc},
	{Name: "simple", Token: "SIMPLE", Class: unres},
	{Name: "skip", Token: "SKIP", Class: unres},
	{Name: "smallint", Token: "SMALLINT", Class: colname},
	{Name: "snapshot", Token: "SNAPSHOT", Class: unres},
	{Name: "some", Token: "SOME", Class: reserved},
	{Name: "sql", Token: "SQL_P", Class: unres},
	{Name: "stable", Token: "STABLE", Class: unres},
	{Name: "standalone", Token: "STANDALONE_P", Class: unres},
	{Name: "start", Token: "START", Class: unres},
	{Name: "statement", Token: "STATEMENT", Class: unres},
	{Name: "statistics", Token: "STATISTICS", Class: unres},
	{Name: "stdin", Token: "STDIN", Class: unres},
	{Name: "stdout", Token: "STDOUT", Class: unres},
	{Name: "storage", Token: "STORAGE", Class: unres},
	{Name: "stored", Token: "STORED", Class: unres},
	{Name: "strict", Token: "STRICT_P", Class: unres},
	{Name: "strip", Token: "STRIP_P", Class: unres},
	{Name: "subscription", Token: "SUBSCRIPTION", Class: unres},
	{Name: "substring", Token: "SUBSTRING", Class: colname},
	{Name: "support", Token: "SUPPORT", Class: unres},
	{Name: "symmetric", Token: "SYMMETRIC", Class: reserved},
	{Name: "sysid", Token: "SYSID", Class: unres},
	{Name: "system", Token: "SYSTEM_P", Class: unres},
	{Name: "system_user", Token: "SYSTEM_USER", Class: reserved},
	{Name: "table", Token: "TABLE", Class: reserved},
	{Name: "tables", Token: "TABLES", Class: unres},
	{Name: "tablesample", Token: "TABLESAMPLE", Class: typefunc},
	{Name: "tablespace", Token: "TABLESPACE", Class: unres},
	{Name: "temp", Token: "TEMP", Class: unres},
	{Name: "template", Token: "TEMPLATE", Class: unres},
	{Name: "temporary", Token: "TEMPORARY", Class: unres},
	{Name: "text", Token: "TEXT_P", Class: unres},
	{Name: "then", Token: "THEN", Class: reserved},
	{Name: "ties", Token: "TIES", Class: unres},
	{Name: "time", Token: "TIME", Class: colname},
	{Name: "timestamp", Token: "TIMESTAMP", Class: colname},
	{Name: "to", Token: "TO", Class: reserved},
	{Name: "trailing", Token: "TRAILING", Class: reserved},
	{Name: "transaction", Token: "TRANSACTION", Class: unres},
	{Name: "transform", Token: "TRANSFORM", Class: unres},
	{Name: "treat", Token: "TREAT", Class: colname},
	{Name: "trigger", Token: "TRIGGER", Class: unres},
	{Name: "trim", Token: "TRIM", Class: colname},
	{Name: "true", Token: "TRUE_P", Class: reserved},
	{Name: "truncate", Token: "TRUNCATE", Class: unres},
	{Name: "trusted", Token: "TRUSTED", Class: unres},
	{Name: "type", Token: "TYPE_P", Class: unres},
	{Name: "types", Token: "TYPES_P", Class: unres},
	{Name: "uescape", Token: "UESCAPE", Class: unres},
	{Name: "unbounded", Token: "UNBOUNDED", Class: unres},
	{Name: "uncommitted", Token: "UNCOMMITTED", Class: unres},
	{Name: "unencrypted", Token: "UNENCRYPTED", Class: unres},
	{Name: "union", Token: "UNION", Class: reserved},
	{Name: "unique", Token: "UNIQUE", Class: reserved},
	{Name: "unknown", Token: "UNKNOWN", Class: unres},
	{Name: "unlisten", Token: "UNLISTEN", Class: unres},
	{Name: "unlogged", Token: "UNLOGGED", Class: unres},
	{Name: "until", Token: "UNTIL", Class: unres},
	{Name: "update", Token: "UPDATE", Class: unres},
	{Name: "user", Token: "USER", Class: reserved},
	{Name: "using", Token: "USING", Class: reserved},
	{Name: "vacuum", Token: "VACUUM", Class: unres},
	{Name: "valid", Token: "VALID", Class: unres},
	{Name: "validate", Token: "VALIDATE", Class: unres},
	{Name: "validator", Token: "VALIDATOR", Class: unres},
	{Name: "value", Token: "VALUE_P", Class: unres},
	{Name: "values", Token: "VALUES", Class: colname},
	{Name: "varchar", Token: "VARCHAR", Class: colname},
	{Name: "variadic", Token: "VARIADIC", Class: reserved},
	{Name: "varying", Token: "VARYING", Class: unres},
	{Name: "verbose", Token: "VERBOSE", Class: typefunc},
	{Name: "version", Token: "VERSION_P", Class: unres},
	{Name: "view", Token: "VIEW", Class: unres},
	{Name: "views", Token: "VIEWS", Class: unres},
	{Name: "volatile", Token: "VOLATILE", Class: unres},
	{Name: "when", Token: "WHEN", Class: reserved},
	{Name: "where", Token: "WHERE", Class: reserved},
	{Name: "whitespace", Token: "WHITESPACE_P", Class: unres},
	{Name: "window", Token: "WINDOW", Class: reserved},
	{Name: "with", Token: "WITH", Class: reserved},
	{Name: "within", Token: "WITHIN", Class: unres},
	{Name: "without", Token: "WITHOUT", Class: unres},
	{Name: "work", Token: "WORK", Class: unres},
	{Name: "wrapper", Token: "WRAPPER", Class: unres},
	{Name: "write", Token: "WRITE", Class: unres},
	{Name: "xml", Token: "XML_P", Class: unres},
	{Name: "xmlattributes", Token: "XMLATTRIBUTES", Class: colname},
	{Name: "xmlconcat", Token: "XMLCONCAT", Class: colname},
	{Name: "xmlelement", Token: "XMLELEMENT", Class: colname},
	{Name: "xmlexists", Token: "XMLEXISTS", Class: colname},
	{Name: "xmlforest", Token: "XMLFOREST", Class: colname},
	{Name: "xmlnamespaces", Token: "XMLNAMESPACES", Class: colname},
	{Name: "xmlparse", Token: "XMLPARSE", Class: colname},
	{Name: "xmlpi", Token: "XMLPI", Class: colname},
	{Name: "xmlroot", Token: "XMLROOT", Class: colname},
	{Name: "xmlserialize", Token: "XMLSERIALIZE", Class: colname},
	{Name: "xmltable", Token: "XMLTABLE", Class: colname},
	{Name: "year", Token: "YEAR_P", Class: unres},
	{Name: "yes", Token: "YES_P", Class: unres},
	{Name: "zone", Token: "ZONE", Class: unres},
}

// asLabelOnly lists the non-reserved keywords that cannot follow an
// expression as a bare column label.
var asLabelOnly = []string{
	"day", "filter", "hour", "minute", "month", "ordinality", "over",
	"precision", "second", "varying", "within", "without", "year",
	"is", "isnull", "notnull", "character", "escape", "uescape",
}

var keywordIndex map[string]int

func init() {
	keywordIndex = make(map[string]int, len(keywords))
	for i := range keywords {
		kw := &keywords[i]
		kw.Kind = keywordBase + Kind(i)
		kw.BareLabel = kw.Class != ReservedKeyword
		keywordIndex[kw.Name] = i
	}
	for _, name := range asLabelOnly {
		keywords[keywordIndex[name]].BareLabel = false
	}
}

// LookupKeyword returns the keyword entry for an identifier. The lookup
// is case-insensitive for ASCII letters.
func LookupKeyword(ident string) (Keyword, bool) {
	i, ok := keywordIndex[Downcase(ident)]
	if !ok {
		return Keyword{}, false
	}
	return keywords[i], true
}

// Keywords returns a copy of the keyword table in name order.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywords))
	copy(out, keywords[:])
	return out
}

func keywordByKind(k Kind) (Keyword, bool) {
	i := int(k - keywordBase)
	if i < 0 || i >= len(keywords) {
		return Keyword{}, false
	}
	return keywords[i], true
}

// Downcase lowers ASCII letters only, leaving multibyte characters as is.
func Downcase(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
