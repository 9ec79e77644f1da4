package pythonparser

// stdlibModules lists the Python standard-library modules and their
// importable submodules, keyed by dotted path. The import checker only
// needs membership, so the table is a set. Curated from the CPython 3
// module index; entries missing here degrade to a non-module
// classification, matching the strictness of resolving against a real
// interpreter without third-party packages.
var stdlibModules = map[string]bool{
	"abc": true, "argparse": true, "array": true, "ast": true,
	"asyncio": true, "atexit": true, "base64": true, "binascii": true,
	"bisect": true, "builtins": true, "bz2": true, "calendar": true,
	"cmath": true, "cmd": true, "codecs": true, "codeop": true,
	"collections": true, "collections.abc": true,
	"colorsys": true, "compileall": true,
	"concurrent": true, "concurrent.futures": true,
	"configparser": true, "contextlib": true, "contextvars": true,
	"copy": true, "copyreg": true, "csv": true,
	"ctypes": true, "ctypes.util": true,
	"dataclasses": true, "datetime": true, "decimal": true,
	"difflib": true, "dis": true, "doctest": true,
	"email": true, "email.charset": true, "email.encoders": true,
	"email.errors": true, "email.header": true, "email.message": true,
	"email.mime": true, "email.parser": true, "email.policy": true,
	"email.utils": true,
	"encodings": true, "enum": true, "errno": true,
	"faulthandler": true, "fcntl": true, "filecmp": true,
	"fileinput": true, "fnmatch": true, "fractions": true,
	"ftplib": true, "functools": true, "gc": true, "getopt": true,
	"getpass": true, "gettext": true, "glob": true, "graphlib": true,
	"grp": true, "gzip": true, "hashlib": true, "heapq": true,
	"hmac": true, "html": true, "html.entities": true,
	"html.parser": true,
	"http": true, "http.client": true, "http.cookiejar": true,
	"http.cookies": true, "http.server": true,
	"imaplib": true,
	"importlib": true, "importlib.abc": true,
	"importlib.machinery": true, "importlib.metadata": true,
	"importlib.resources": true, "importlib.util": true,
	"inspect": true, "io": true, "ipaddress": true, "itertools": true,
	"json": true, "json.decoder": true, "json.encoder": true,
	"json.tool": true,
	"keyword": true, "linecache": true, "locale": true,
	"logging": true, "logging.config": true, "logging.handlers": true,
	"lzma": true, "mailbox": true, "math": true, "mimetypes": true,
	"mmap": true, "modulefinder": true,
	"multiprocessing": true, "multiprocessing.connection": true,
	"multiprocessing.managers": true, "multiprocessing.pool": true,
	"multiprocessing.shared_memory": true,
	"netrc": true, "numbers": true, "operator": true,
	"os": true, "os.path": true,
	"pathlib": true, "pdb": true, "pickle": true, "pickletools": true,
	"pkgutil": true, "platform": true, "plistlib": true,
	"poplib": true, "posixpath": true, "pprint": true, "profile": true,
	"pstats": true, "pty": true, "pwd": true, "py_compile": true,
	"pyclbr": true, "pydoc": true,
	"queue": true, "quopri": true, "random": true, "re": true,
	"readline": true, "reprlib": true, "resource": true, "runpy": true,
	"sched": true, "secrets": true, "select": true, "selectors": true,
	"shelve": true, "shlex": true, "shutil": true, "signal": true,
	"site": true, "smtplib": true, "socket": true,
	"socketserver": true, "sqlite3": true, "ssl": true, "stat": true,
	"statistics": true, "string": true, "stringprep": true,
	"struct": true, "subprocess": true, "symtable": true,
	"sys": true, "sysconfig": true, "syslog": true,
	"tabnanny": true, "tarfile": true, "tempfile": true,
	"termios": true, "textwrap": true, "threading": true,
	"time": true, "timeit": true,
	"tkinter": true, "tkinter.filedialog": true,
	"tkinter.messagebox": true, "tkinter.ttk": true,
	"token": true, "tokenize": true, "tomllib": true, "trace": true,
	"traceback": true, "tracemalloc": true, "tty": true, "types": true,
	"typing": true, "unicodedata": true,
	"unittest": true, "unittest.mock": true,
	"urllib": true, "urllib.error": true, "urllib.parse": true,
	"urllib.request": true, "urllib.response": true,
	"urllib.robotparser": true,
	"uuid": true, "venv": true, "warnings": true, "wave": true,
	"weakref": true, "webbrowser": true,
	"wsgiref": true, "wsgiref.handlers": true, "wsgiref.headers": true,
	"wsgiref.simple_server": true, "wsgiref.types": true,
	"wsgiref.util": true, "wsgiref.validate": true,
	"xml": true, "xml.dom": true, "xml.dom.minidom": true,
	"xml.dom.pulldom": true, "xml.etree": true,
	"xml.etree.ElementTree": true, "xml.parsers": true,
	"xml.parsers.expat": true, "xml.sax": true,
	"xml.sax.handler": true, "xml.sax.saxutils": true,
	"xml.sax.xmlreader": true,
	"xmlrpc": true, "xmlrpc.client": true, "xmlrpc.server": true,
	"zipapp": true, "zipfile": true, "zipimport": true, "zlib": true,
	"zoneinfo": true,
}
