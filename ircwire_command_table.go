// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package ircwire

// The closed command table: every recognized identifier and its minimum
// parameter count. Both tables are sorted by name for binary search.
// Extending protocol coverage means adding entries here.

// Named verbs, keyed by canonical uppercase spelling.
var namedCommands = [...]commandSpec{
	{"ACCEPT", 0},
	{"ACCOUNT", 1},
	{"ACK", 0},
	{"ADMIN", 0},
	{"AUTHENTICATE", 1},
	{"AWAY", 0},
	{"BATCH", 1},
	{"CAP", 1},
	{"CHGHOST", 2},
	{"CNOTICE", 3},
	{"CONNECT", 1},
	{"CPRIVMSG", 3},
	{"DIE", 0},
	{"ENCAP", 2},
	{"ERROR", 1},
	{"ETRACE", 0},
	{"FAIL", 3},
	{"HELP", 0},
	{"INFO", 0},
	{"INVITE", 2},
	{"ISON", 1},
	{"JOIN", 1},
	{"KICK", 2},
	{"KILL", 2},
	{"KNOCK", 1},
	{"LINKS", 0},
	{"LIST", 0},
	{"LUSERS", 0},
	{"MAP", 0},
	{"METADATA", 2},
	{"MODE", 1},
	{"MONITOR", 1},
	{"MOTD", 0},
	{"NAMES", 1},
	{"NICK", 1},
	{"NOTE", 3},
	{"NOTICE", 2},
	{"OPER", 2},
	{"PART", 1},
	{"PASS", 1},
	{"PING", 1},
	{"PONG", 1},
	{"PRIVMSG", 2},
	{"QUIT", 0},
	{"REHASH", 0},
	{"RESTART", 0},
	{"SERVER", 3},
	{"SERVICE", 6},
	{"SERVLIST", 0},
	{"SETNAME", 1},
	{"SILENCE", 0},
	{"SQUERY", 2},
	{"SQUIT", 2},
	{"STATS", 1},
	{"SUMMON", 1},
	{"TAGMSG", 1},
	{"TIME", 0},
	{"TOPIC", 1},
	{"TRACE", 0},
	{"USER", 4},
	{"USERHOST", 1},
	{"USERIP", 1},
	{"USERS", 0},
	{"VERSION", 0},
	{"WALLOPS", 1},
	{"WARN", 3},
	{"WATCH", 1},
	{"WEBIRC", 4},
	{"WHO", 1},
	{"WHOIS", 1},
	{"WHOWAS", 1},
}

// Numeric reply and error codes. Comments give the reply names the code
// is known by across server implementations; "conflicts" lists
// assignments that reuse the same code elsewhere.
var numericCommands = [...]commandSpec{
	{"001", 2}, // RPL_WELCOME
	{"002", 2}, // RPL_YOURHOST/RPL_YOURHOSTIS
	{"003", 2}, // RPL_CREATED/RPL_SERVERCREATED
	{"004", 5}, // RPL_MYINFO/RPL_SERVERVERSION
	{"005", 2}, // RPL_ISUPPORT/RPL_PROTOCTL (depreciated: RPL_BOUNCE moved to 010)
	{"006", 1}, // RPL_MAP (unreal)
	{"007", 1}, // RPL_MAPEND/RPL_ENDMAP (unreal)
	{"008", 1}, // RPL_SNOMASK/RPL_SNOMASKIS (ircu)
	{"009", 1}, // RPL_STATMEMTOT (ircu)
	{"010", 4}, // RPL_BOUNCE/RPL_REDIR (depreciated & conflict: RPL_STATMEM (ircu))
	{"014", 1}, // RPL_YOURCOOKIE
	{"015", 1}, // RPL_MAP (ircu)
	{"016", 1}, // RPL_MAPMORE (ircu)
	{"017", 1}, // RPL_MAPEND/RPL_ENDMAP (ircu)
	{"018", 2}, // RPL_MAPUSERS (inspircd)
	{"020", 2}, // RPL_HELLO (rusnet-ircd)
	{"030", 1}, // RPL_APASSWARN_SET (ircu)
	{"031", 1}, // RPL_APASSWARN_SECRET (ircu)
	{"032", 1}, // RPL_APASSWARN_CLEAR (ircu)
	{"042", 1}, // RPL_YOURID/RPL_YOURUUID (IRCnet/inspircd)
	{"043", 3}, // RPL_SAVENICK (IRCnet)
	{"050", 1}, // RPL_ATTEMPTINGJUNC (aircd)
	{"051", 1}, // RPL_ATTEMPTINGREROUTE (aircd)
	{"105", 2}, // RPL_REMOTEISUPPORT (unreal)
	{"200", 3}, // RPL_TRACELINK (RFC1459)
	{"201", 3}, // RPL_TRACECONNECTING (RFC1459)
	{"202", 3}, // RPL_TRACEHANDSHAKE (RFC1459)
	{"203", 2}, // RPL_TRACEUNKNOWN (RFC1459)
	{"204", 3}, // RPL_TRACEOPERATOR (RFC1459)
	{"205", 3}, // RPL_TRACEUSER (RFC1459)
	{"206", 5}, // RPL_TRACESERVER (RFC1459)
	{"207", 5}, // RPL_TRACESERVICE (RFC2812) (conflict: RPL_TRACECAPTURED (oftc-hybrid))
	{"208", 3}, // RPL_TRACENEWTYPE (RFC1459)
	{"209", 3}, // RPL_TRACECLASS (RFC2812)
	{"210", 1}, // RPL_TRACERECONNECT (RFC2812) (conflicts: RPL_STATS (aircd) RPL_STATSHELP (unreal))
	{"211", 8}, // RPL_STATSLINKINFO (RFC1459)
	{"212", 3}, // RPL_STATSCOMMANDS (RFC1459)
	{"213", 7}, // RPL_STATSCLINE (RFC1459)
	{"214", 7}, // RPL_STATSNLINE (RFC1459)/RPL_STATSOLDNLINE (ircu, unreal)
	{"215", 7}, // RPL_STATSILINE (RFC1459)
	{"216", 7}, // RPL_STATSKLINE (RFC1459)
	{"217", 1}, // RPL_STATSQLINE (RFC1459) (conflict: RPL_STATSPLINE (ircu))
	{"218", 6}, // RPL_STATSYLINE (RFC1459)
	{"219", 3}, // RPL_ENDOFSTATS (RFC1459)
	{"220", 1}, // RPL_STATSPLINE (hybrid) (conflicts: RPL_STATSBLINE (bahamut, unreal) RPL_STATSWLINE (nefarious))
	{"221", 2}, // RPL_UMODEIS (RFC1459)
	{"222", 1}, // RPL_MODLIST (conflicts: RPL_SQLINE_NICK (unreal) RPL_STATSBLINE (bahamut) RPL_STATSJLINE (ircu) RPL_CODEPAGE (rusnet-ircd))
	{"223", 1}, // RPL_STATSELINE (bahamut) (conflicts: RPL_STATSGLINE (unreal) RPL_CHARSET (rusnet-ircd))
	{"224", 1}, // RPL_STATSFLINE (hybrid, bahamut) (conflict: RPL_STATSTLINE (unreal))
	{"225", 1}, // RPL_STATSDLINE (hybrid) (conflicts: RPL_STATSCLONE (bahamut) RPL_STATSELINE (unreal) (depreciated: RPL_STATSZLINE (bahamut)))
	{"226", 1}, // RPL_STATSCOUNT (bahamut) (conflicts: RPL_STATSALINE (hybrid) RPL_STATSNLINE (unreal))
	{"227", 1}, // RPL_STATSGLINE (bahamut) (conflicts: RPL_STATSVLINE (unreal) RPL_STATSBLINE (rizon))
	{"228", 1}, // RPL_STATSQLINE (ircu) (conflicts: RPL_STATSBANVER (unreal) RPL_STATSCOUNT (oftc-hybrid))
	{"229", 1}, // RPL_STATSSPAMF (unreal)
	{"230", 1}, // RPL_STATSEXCEPTTKL (unreal)
	{"231", 1}, // RPL_SERVICEINFO (RFC1459) depreciated
	{"232", 1}, // RPL_ENDOFSERVICES (RFC1459) depreciated (conflict: RPL_RULES (unreal))
	{"233", 1}, // RPL_SERVICE (RFC1459) depreciated
	{"234", 7}, // RPL_SERVLIST (RFC2812)
	{"235", 4}, // RPL_SERVLISTEND (RFC2812)
	{"236", 1}, // RPL_STATSVERBOSE (ircu)
	{"237", 1}, // RPL_STATSENGINE (ircu)
	{"238", 1}, // RPL_STATSFLINE (ircu)
	{"239", 1}, // RPL_STATSIAUTH (IRCnet)
	{"240", 1}, // RPL_STATSVLINE (RFC2812) (conflict: RPL_STATSXLINE (austhex))
	{"241", 6}, // RPL_STATSLLINE (RFC1459)
	{"242", 2}, // RPL_STATSUPTIME (RFC1459)
	{"243", 6}, // RPL_STATSOLINE (RFC1459)
	{"244", 5}, // RPL_STATSHLINE (RFC1459)
	{"245", 1}, // RPL_STATSSLINE (bahamut) (conflict: RPL_STATSTLINE (hybrid?))
	{"246", 1}, // RPL_STATSPING (RFC2812) (conflicts: RPL_STATSSERVICE (hybrid) RPL_STATSTLINE (ircu) RPL_STATSULINE (bahamut))
	{"247", 1}, // RPL_STATSBLINE (RFC2812) (conflicts: RPL_STATSXLINE (unreal) RPL_STATSGLINE (ircu))
	{"248", 1}, // RPL_STATSULINE (ircu) (conflict: RPL_STATSDEFINE (IRCnet))
	{"249", 1}, // RPL_STATSDEBUG (hybrid) (conflict: RPL_STATSULINE)
	{"250", 1}, // RPL_STATSDLINE (RFC2812) (conflict: RPL_STATSCONN (ircu))
	{"251", 2}, // RPL_LUSERCLIENT (RFC1459)
	{"252", 3}, // RPL_LUSEROP (RFC1459)
	{"253", 3}, // RPL_LUSERUNKNOWN (RFC1459)
	{"254", 3}, // RPL_LUSERCHANNELS (RFC1459)
	{"255", 2}, // RPL_LUSERME (RFC1459)
	{"256", 2}, // RPL_ADMINME (RFC1459)
	{"257", 2}, // RPL_ADMINLOC1 (RFC1459)
	{"258", 2}, // RPL_ADMINLOC2 (RFC1459)
	{"259", 2}, // RPL_ADMINEMAIL (RFC1459)
	{"261", 3}, // RPL_TRACELOG (RFC1459)
	{"262", 4}, // RPL_TRACEEND/RPL_ENDOFTRACE (RFC2812) (conflict: RPL_TRACEPING)
	{"263", 3}, // RPL_TRYAGAIN/RPL_LOAD2HI/RPL_LOAD_THROTTLED (RFC2812)
	{"264", 1}, // RPL_USINGSSL (rusnet-ircd)
	{"265", 2}, // RPL_LOCALUSERS/RPL_CURRENT_LOCAL (bahamut)
	{"266", 2}, // RPL_GLOBALUSERS/RPL_CURRENT_GLOBAL (bahamut)
	{"267", 1}, // RPL_START_NETSTAT (aircd)
	{"268", 1}, // RPL_NETSTAT (aircd)
	{"269", 1}, // RPL_END_NETSTAT (aircd)
	{"270", 1}, // RPL_PRIVS (ircu) (conflict & depreciated: RPL_MAPUSERS (inspircd old))
	{"271", 2}, // RPL_SILELIST (ircu)
	{"272", 2}, // RPL_ENDOFSILELIST (ircu)
	{"273", 1}, // RPL_NOTIFY (aircd)
	{"274", 1}, // RPL_ENDNOTIFY (aircd) (conflict: RPL_STATSDELTA (IRCnet))
	{"275", 1}, // RPL_STATSDLINE (ircu) (conflict: RPL_USINGSSL (bahamut))
	{"276", 3}, // RPL_WHOISCERTFP (oftc-hybrid) (conflicts: RPL_STATSRLINE (ircu) depreciated: RPL_VCHANEXIST (hybrid))
	{"277", 1}, // RPL_VCHANLIST (hybrid) depreciated
	{"278", 1}, // RPL_VCHANHELP (hybrid) depreciated
	{"280", 1}, // RPL_GLIST (ircu)
	{"281", 2}, // RPL_ACCEPTLIST (conflict: RPL_ENDOFGLIST (ircu))
	{"282", 2}, // RPL_ENDOFACCEPT (conflict: RPL_JUPELIST (ircu))
	{"283", 1}, // RPL_ALIST (conflict: RPL_ENDOFJUPELIST (ircu))
	{"284", 1}, // RPL_ENDOFALIST (conflict: RPL_FEATURE (ircu))
	{"285", 1}, // RPL_GLIST_HASH (conflicts: RPL_CHANINFO_HANDLE (aircd) RPL_NEWHOSTIS (quakenet))
	{"286", 1}, // RPL_CHANINFO_USERS (aircd) (conflict: RPL_CHKHEAD (quakenet))
	{"287", 1}, // RPL_CHANINFO_CHOPS (aircd) (conflict: RPL_CHANUSER (quakenet))
	{"288", 1}, // RPL_CHANINFO_VOICES (aircd) (conflict: RPL_PATCHHEAD (quakenet))
	{"289", 1}, // RPL_CHANINFO_AWAY (aircd) (conflict: RPL_PATCHCON (quakenet))
	{"290", 1}, // RPL_CHANINFO_OPERS (aircd) (conflicts: RPL_DATASTR (quakenet) RPL_HELPHDR (unreal))
	{"291", 1}, // RPL_CHANINFO_BANNED (aircd) (conflicts: RPL_ENDOFCHECK (quakenet) RPL_HELPOP (unreal))
	{"292", 1}, // RPL_CHANINFO_BANS (aircd) (conflicts: RPL_HELPTLR (unreal) ERR_SEARCHNOMATCH (nefarious))
	{"293", 1}, // RPL_CHANINFO_INVITE (aircd) (conflict: RPL_HELPHLP (unreal))
	{"294", 1}, // RPL_CHANINFO_INVITES (aircd) (conflict: RPL_HELPFWD (unreal))
	{"295", 1}, // RPL_CHANINFO_KICK (aircd) (conflict: RPL_HELPIGN (unreal))
	{"296", 1}, // RPL_CHANINFO_KICKS (aircd)
	{"299", 1}, // RPL_END_CHANINFO (aircd)
	{"300", 1}, // RPL_NONE (RFC1459)
	{"301", 3}, // RPL_AWAY (RFC1459)
	{"302", 1}, // RPL_USERHOST (RFC1459)
	{"303", 1}, // RPL_ISON (RFC1459)
	{"304", 2}, // RPL_TEXT (unreal)
	{"305", 2}, // RPL_UNAWAY (RFC1459)
	{"306", 2}, // RPL_NOWAWAY (RFC1459)
	{"307", 3}, // RPL_USERIP (conflicts: RPL_WHOISREGNICK (bahamut) RPL_SUPERHOST (austhex))
	{"308", 1}, // RPL_NOTIFYACTION (aircd) (conflicts: RPL_WHOISADMIN (bahamut) RPL_RULESSTART (unreal)/RPL_RULESTART (inspircd))
	{"309", 1}, // RPL_NICKTRACE (aircd) (conflicts: RPL_WHOISSADMIN (bahamut) RPL_ENDOFRULES (unreal)/RPL_RULESEND (inspircd) RPL_WHOISHELPER (austhex) RPL_WHOISSERVICE (oftc-hybrid))
	{"310", 1}, // RPL_WHOISSVCMSG (bahamut) (conflicts: RPL_WHOISHELPOP (unreal) RPL_WHOISSERVICE (austhex))
	{"311", 6}, // RPL_WHOISUSER (RFC1459)
	{"312", 4}, // RPL_WHOISSERVER (RFC1459)
	{"313", 3}, // RPL_WHOISOPERATOR (RFC1459)
	{"314", 6}, // RPL_WHOWASUSER (RFC1459)
	{"315", 3}, // RPL_ENDOFWHO (RFC1459)
	{"316", 1}, // RPL_WHOISPRIVDEAF (nefarious) (conflict & depreciated: RPL_WHOISCHANOP (RFC1459))
	{"317", 5}, // RPL_WHOISIDLE (RFC1459)
	{"318", 3}, // RPL_ENDOFWHOIS (RFC1459)
	{"319", 3}, // RPL_WHOISCHANNELS (RFC1459)
	{"320", 3}, // RPL_WHOISSPECIAL (unreal) (conflicts: RPL_WHOIS_HIDDEN (anothernet) RPL_WHOISVIRT (austhex))
	{"321", 2}, // RPL_LISTSTART (RFC1459) depreciated
	{"322", 4}, // RPL_LIST (RFC1459)
	{"323", 2}, // RPL_LISTEND (RFC1459)
	{"324", 3}, // RPL_CHANNELMODEIS (RFC1459)
	{"325", 3}, // RPL_UNIQOPIS (RFC2812) (conflicts: RPL_CHANNELPASSIS RPL_WHOISWEBIRC (nefarious) depreciated: RPL_CHANNELMLOCKIS/RPL_CHANNELMLOCK (sorircd))
	{"326", 1}, // RPL_NOCHANPASS
	{"327", 1}, // RPL_CHPASSUNKNOWN (conflict: RPL_WHOISHOST (rusnet-ircd))
	{"328", 1}, // RPL_CHANNEL_URL (bahamut)/RPL_CHANNELURL (charybdis)
	{"329", 3}, // RPL_CREATIONTIME (bahamut)/RPL_CHANNELCREATED (inspircd)
	{"330", 4}, // RPL_WHOISACCOUNT (ircu)/RPL_WHOISLOGGEDIN (conflict: RPL_WHOWAS_TIME)
	{"331", 3}, // RPL_NOTOPIC (RFC1459)/RPL_NOTOPICSET (inspircd)
	{"332", 3}, // RPL_TOPIC (RFC1459)/RPL_TOPICSET (inspircd)
	{"333", 3}, // RPL_TOPICWHOTIME (ircu)/RPL_TOPICTIME (inspircd)
	{"334", 1}, // RPL_LISTUSAGE (ircu) (conflicts: RPL_COMMANDSYNTAX (bahamut) RPL_LISTSYNTAX (unreal))
	{"335", 3}, // RPL_WHOISBOT (unreal) (conflicts: RPL_WHOISTEXT (hybrid) RPL_WHOISACCOUNTONLY (nefarious))
	{"336", 2}, // RPL_INVITELIST (hybrid not 346) (conflict: RPL_WHOISBOT (nefarious))
	{"337", 2}, // RPL_ENDOFINVITELIST (hybrid not 347) (conflict: RPL_WHOISTEXT (older hybrid?))
	{"338", 3}, // RPL_WHOISACTUALLY (ircu) (conflict: RPL_CHANPASSOK)
	{"339", 1}, // RPL_BADCHANPASS (conflict: RPL_WHOISMARKS (nefarious))
	{"340", 2}, // RPL_USERIP (ircu)
	{"341", 3}, // RPL_INVITING (RFC1459)
	{"342", 3}, // RPL_SUMMONING (RFC1459) depreciated
	{"343", 1}, // RPL_WHOISKILL (nefarious) (conflict: RPL_WHOISOPERNAME (snircd))
	{"344", 1}, // RPL_WHOISCOUNTRY (inspircd) (conflicts: RPL_REOPLIST (IRCnet) RPL_QUIETLIST (oftc-hybrid))
	{"345", 1}, // RPL_INVITED (gamesurge)/RPL_ISSUEDINVITE (ircu) (conflicts: RPL_ENDOFREOPLIST (IRCnet) RPL_ENDOFQUIETLIST (oftc-hybrid))
	{"346", 3}, // RPL_INVITELIST (RFC2812 not 336)/RPL_INVEXLIST (hybrid)
	{"347", 3}, // RPL_ENDOFINVITELIST (RFC2812 not 337)/RPL_ENDOFINVEXLIST (hybrid)
	{"348", 3}, // RPL_EXCEPTLIST (RFC2812)/RPL_EXLIST (unreal)/RPL_EXEMPTLIST (bahamut)
	{"349", 3}, // RPL_ENDOFEXCEPTLIST (RFC2812)/RPL_ENDOFEXLIST (unreal)/RPL_ENDOFEXEMPTLIST (bahamut)
	{"350", 4}, // RPL_WHOISGATEWAY (inspircd)
	{"351", 4}, // RPL_VERSION (RFC1459)
	{"352", 8}, // RPL_WHOREPLY (RFC1459)
	{"353", 4}, // RPL_NAMREPLY (RFC1459)
	{"354", 2}, // RPL_WHOSPCRPL (ircu)/RPL_RWHOREPLY (bahamut)
	{"355", 1}, // RPL_NAMREPLY_ (quakenet)/RPL_DELNAMREPLY (ircu)
	{"357", 1}, // RPL_MAP (austhex)
	{"358", 1}, // RPL_MAPMORE (austhex)
	{"359", 1}, // RPL_MAPEND/RPL_ENDMAP (austhex)
	{"360", 1}, // RPL_WHOWASREAL (charybdis) depreciated
	{"361", 1}, // RPL_KILLDONE (RFC1459)
	{"362", 1}, // RPL_CLOSING (RFC1459)
	{"363", 1}, // RPL_CLOSEEND (RFC1459)
	{"364", 4}, // RPL_LINKS (RFC1459)
	{"365", 3}, // RPL_ENDOFLINKS (RFC1459)
	{"366", 3}, // RPL_ENDOFNAMES (RFC1459)
	{"367", 3}, // RPL_BANLIST (RFC1459)
	{"368", 3}, // RPL_ENDOFBANLIST (RFC1459)
	{"369", 3}, // RPL_ENDOFWHOWAS (RFC1459)
	{"371", 2}, // RPL_INFO (RFC1459)
	{"372", 2}, // RPL_MOTD (RFC1459)
	{"373", 1}, // RPL_INFOSTART (RFC1459) depreciated
	{"374", 2}, // RPL_ENDOFINFO (RFC1459)
	{"375", 2}, // RPL_MOTDSTART (RFC1459)
	{"376", 2}, // RPL_ENDOFMOTD (RFC1459)
	{"377", 1}, // RPL_KICKEXPIRED (aircd) (conflict & deprecated: RPL_SPAM (austhex))
	{"378", 3}, // RPL_BANEXPIRED (aircd) (conflicts: RPL_WHOISHOST (unreal) depreciated: RPL_MOTD (austhex))
	{"379", 3}, // RPL_KICKLINKED (aircd) (conflicts: RPL_WHOISMODES (unreal) depreciated: RPL_WHOWASIP (inspircd))
	{"380", 1}, // RPL_BANLINKED (aircd) (conflict: RPL_YOURHELPER (austhex))
	{"381", 2}, // RPL_YOUREOPER (RFC1459)/RPL_YOUAREOPER (inspircd)
	{"382", 3}, // RPL_REHASHING (RFC1459)
	{"383", 1}, // RPL_YOURESERVICE (RFC2812)
	{"384", 1}, // RPL_MYPORTIS (RFC1459) depreciated
	{"385", 1}, // RPL_NOTOPERANYMORE (austhex)
	{"386", 1}, // RPL_QLIST (unreal) (conflicts: RPL_IRCOPS (ultimate) RPL_IRCOPSHEADER (nefarious) depreciated: RPL_RSACHALLENGE (hybrid))
	{"387", 1}, // RPL_ENDOFQLIST (unreal) (conflicts: RPL_ENDOFIRCOPS (ultimate) RPL_IRCOPS (nefarious))
	{"388", 1}, // RPL_ALIST (unreal) (conflict: RPL_ENDOFIRCOPS (nefarious))
	{"389", 1}, // RPL_ENDOFALIST (unreal)
	{"391", 3}, // RPL_TIME (RFC1459)
	{"392", 2}, // RPL_USERSSTART (RFC1459)
	{"393", 2}, // RPL_USERS (RFC1459)
	{"394", 2}, // RPL_ENDOFUSERS (RFC1459)
	{"395", 2}, // RPL_NOUSERS (RFC1459)
	{"396", 3}, // RPL_HOSTHIDDEN (unreal)/RPL_VISIBLEHOST (hybrid)/RPL_YOURDISPLAYEDHOST (inspircd)
	{"398", 1}, // RPL_STATSSLINE (snirc)
	{"399", 1}, // RPL_USINGSLINE (snirc) (conflict: RPL_CLONES (inspircd))
	{"400", 3}, // ERR_UNKNOWNERROR (ergo) (conflict & depreciated: ERR_FIRSTERROR (ircu))
	{"401", 3}, // ERR_NOSUCHNICK (RFC1459)
	{"402", 3}, // ERR_NOSUCHSERVER (RFC1459)
	{"403", 3}, // ERR_NOSUCHCHANNEL (RFC1459)
	{"404", 3}, // ERR_CANNOTSENDTOCHAN (RFC1459)
	{"405", 3}, // ERR_TOOMANYCHANNELS (RFC1459)
	{"406", 2}, // ERR_WASNOSUCHNICK (RFC1459)
	{"407", 3}, // ERR_TOOMANYTARGETS (RFC1459)
	{"408", 3}, // ERR_NOSUCHSERVICE (RFC2812) (conflicts: ERR_NOCOLORSONCHAN (bahamut) ERR_NOCTRLSONCHAN (hybrid) ERR_SEARCHNOMATCH (snircd))
	{"409", 2}, // ERR_NOORIGIN (RFC1459)
	{"410", 2}, // ERR_INVALIDCAPCMD (undernet?)/ERR_INVALIDCAPSUBCOMMAND (inspircd)/ERR_UNKNOWNCAPCMD (ircu)
	{"411", 2}, // ERR_NORECIPIENT (RFC1459)
	{"412", 2}, // ERR_NOTEXTTOSEND (RFC1459)
	{"413", 3}, // ERR_NOTPLEVEL (RFC1459)
	{"414", 3}, // ERR_WILDTOPLEVEL (RFC1459)
	{"415", 3}, // ERR_BADMASK (RFC2812) (conflict: ERR_MSGNEEDREGGEDNICK (solanum)/ERR_CANTSENDREGONLY (oftc-hybrid))
	{"416", 3}, // ERR_TOOMANYMATCHES (IRCnet)/ERR_QUERYTOOLONG (ircu)
	{"417", 2}, // ERR_INPUTTOOLONG (ircu)
	{"419", 1}, // ERR_LENGTHTRUNCATED (aircd)
	{"420", 2}, // ERR_AMBIGUOUSCOMMAND (inspircd)
	{"421", 3}, // ERR_UNKNOWNCOMMAND (RFC1459)
	{"422", 2}, // ERR_NOMOTD (RFC1459)
	{"423", 3}, // ERR_NOADMININFO (RFC1459)
	{"424", 2}, // ERR_FILEERROR (RFC1459)
	{"425", 1}, // ERR_NOOPERMOTD (unreal)
	{"429", 1}, // ERR_TOOMANYAWAY (bahamut)
	{"430", 1}, // ERR_EVENTNICKCHANGE (austhex)
	{"431", 2}, // ERR_NONICKNAMEGIVEN (RFC1459)
	{"432", 3}, // ERR_ERRONEUSNICKNAME (RFC1459)
	{"433", 3}, // ERR_NICKNAMEINUSE (RFC1459)
	{"434", 1}, // ERR_SERVICENAMEINUSE (austhex) (conflicts: ERR_NORULES (unreal) ERR_NONICKWHILEBAN (oftc-hybrid))
	{"435", 1}, // ERR_SERVICECONFUSED (unreal) (conflict: ERR_BANONCHAN (bahamut)/ERR_BANNICKCHANGE (ratbox) depreciated: ERR_NICKONBAN (oftc-hybrid))
	{"436", 2}, // ERR_ERR_NICKCOLLISION (RFC1459)
	{"437", 3}, // ERR_UNAVAILRESOURCE (RFC2812) (conflict: ERR_BANNICKCHANGE (ircu))
	{"438", 1}, // ERR_NICKTOOFAST (ircu)/ERR_NCHANGETOOFAST (unreal) (conflict: ERR_DEAD (IRCnet))
	{"439", 1}, // ERR_TARGETTOOFAST (ircu)/ERR_TARGETTOFAST/RPL_INVTOOFAST/RPL_MSGTOOFAST
	{"440", 1}, // ERR_SERVICESDOWN (bahamut)/ERR_REG_UNAVAILABLE (ergo)
	{"441", 4}, // ERR_USERNOTINCHANNEL (RFC1459)
	{"442", 3}, // ERR_NOTONCHANNEL (RFC1459)
	{"443", 4}, // ERR_USERONCHANNEL (RFC1459)
	{"444", 3}, // ERR_NOLOGIN (RFC1459)
	{"445", 2}, // ERR_SUMMONDISABLED (RFC1459)
	{"446", 2}, // ERR_USERSDISABLED (RFC1459)
	{"447", 1}, // ERR_NONICKCHANGE (unreal)/ERR_CANTCHANGENICK (inspircd)
	{"448", 2}, // ERR_FORBIDDENCHANNEL (unreal)
	{"449", 1}, // ERR_NOTIMPLEMENTED (undernet)
	{"451", 2}, // ERR_NOTREGISTERED (RFC1459)
	{"452", 1}, // ERR_IDCOLLISION
	{"453", 1}, // ERR_NICKLOST
	{"455", 1}, // ERR_HOSTILENAME (unreal)
	{"456", 2}, // ERR_ACCEPTFULL
	{"457", 3}, // ERR_ACCEPTEXIST
	{"458", 3}, // ERR_ACCEPTNOT
	{"459", 1}, // ERR_NOHIDING (unreal)
	{"460", 1}, // ERR_NOTFORHALFOPS (unreal)
	{"461", 3}, // ERR_NEEDMOREPARAMS (RFC1459)
	{"462", 2}, // ERR_ALREADYREGISTERED (RFC1459)/ERR_ALREADYREGISTRED
	{"463", 2}, // ERR_NOPERMFORHOST (RFC1459)
	{"464", 2}, // ERR_PASSWDMISMATCH (RFC1459)
	{"465", 2}, // ERR_YOUREBANNEDCREEP (RFC1459)
	{"466", 1}, // ERR_YOUWILLBEBANNED (RFC1459) depreciated
	{"467", 3}, // ERR_KEYSET (RFC1459)
	{"468", 1}, // ERR_INVALIDUSERNAME (ircu) (conflicts: ERR_ONLYSERVERSCANCHANGE (bahamut) ERR_NOCODEPAGE (rusnet-ircd))
	{"469", 1}, // ERR_LINKSET (unreal)
	{"470", 1}, // ERR_LINKCHANNEL (unreal) (conflicts: ERR_KICKEDFROMCHAN (aircd) ERR_7BIT (rusnet-ircd))
	{"471", 3}, // ERR_CHANNELISFULL (RFC1459)
	{"472", 3}, // ERR_UNKNOWNMODE (RFC1459)
	{"473", 3}, // ERR_INVITEONLYCHAN (RFC1459)
	{"474", 3}, // ERR_BANNEDFROMCHAN (RFC1459)
	{"475", 3}, // ERR_BADCHANNELKEY (RFC1459)
	{"476", 3}, // ERR_BADCHANMASK (RFC2812) (conflict: ERR_OPERONLYCHAN (plexus))
	{"477", 3}, // ERR_NOCHANMODES (RFC2812)/ERR_MODELESS (conflict: ERR_NEEDREGGEDNICK (bahamut)/ERR_REGONLYCHAN (oftc-hybrid))
	{"478", 3}, // ERR_BANLISTFULL (RFC2812)
	{"479", 1}, // ERR_BADCHANNAME (hybrid) (conflicts: ERR_LINKFAIL (unreal) ERR_NOCOLOR (rusnet-ircd))
	{"480", 1}, // ERR_NOULINE (austhex) (conflicts: ERR_CANNOTKNOCK (unreal) ERR_THROTTLE (ratbox)/ERR_NEEDTOWAIT (bahamut) ERR_NOWALLOP (rusnet-ircd) ERR_SSLONLYCHAN (oftc-hybrid))
	{"481", 2}, // ERR_NOPRIVILEGES (RFC1459)
	{"482", 3}, // ERR_CHANOPRIVSNEEDED (RFC1459)
	{"483", 2}, // ERR_CANTKILLSERVER (RFC1459)/ERR_KILLDENY (unreal)
	{"484", 2}, // ERR_RESTRICTED (RFC2812) (conflicts: ERR_ISCHANSERVICE (undernet) ERR_DESYNC (bahamut) ERR_ATTACKDENY (unreal))
	{"485", 2}, // ERR_UNIQOPRIVSNEEDED (RFC2812) (conflicts: ERR_KILLDENY (unreal) ERR_CANTKICKADMIN (PTlink) ERR_ISREALSERVICE (quakenet) ERR_CHANBANREASON (hybrid) depreciated: ERR_BANNEDNICK (ratbox))
	{"486", 1}, // ERR_NONONREG (unreal)/ERR_ACCOUNTONLY (conflicts: ERR_RLINED (rusnet-ircd) depreciated: ERR_HTMDISABLED (unreal))
	{"487", 1}, // ERR_CHANTOORECENT (IRCnet) (conflicts: ERR_MSGSERVICES (bahamut) ERR_NOTFORUSERS (unreal) ERR_NONONSSL (ChatIRCd))
	{"488", 1}, // ERR_TSLESSCHAN (IRCnet) (conflicts: ERR_HTMDISABLED (unreal) ERR_NOSSL (bahamut))
	{"489", 1}, // ERR_SECUREONLYCHAN (unreal)/ERR_SSLONLYCHAN (conflict: ERR_VOICENEEDED (undernet))
	{"490", 1}, // ERR_ALLMUSTSSL (inspIRCd) (conflicts: ERR_NOSWEAR (unreal) ERR_MAXMSGSENT (bahamut))
	{"491", 2}, // ERR_NOOPERHOST (RFC1459)
	{"492", 1}, // ERR_NOSERVICEHOST (RFC1459) depreciated (conflicts: ERR_NOCTCP (hybrid)/ERR_NOCTCPALLOWED (inspIRCd) ERR_CANNOTSENDTOUSER (charybdis))
	{"493", 1}, // ERR_NOSHAREDCHAN (bahamut) (conflict: ERR_NOFEATURE (ircu))
	{"494", 1}, // ERR_BADFEATVALUE (ircu) (conflict: ERR_OWNMODE (bahamut) ERR_INVITEREMOVED (inspIRCd))
	{"495", 1}, // ERR_BADLOGTYPE (ircu) (conflict & depreciated: ERR_DELAYREJOIN (inspIRCd))
	{"496", 1}, // ERR_BADLOGSYS (ircu)
	{"497", 1}, // ERR_BADLOGVALUE (ircu)
	{"498", 1}, // ERR_ISOPERLCHAN (ircu)
	{"499", 1}, // ERR_CHANOWNPRIVNEEDED (unreal)
	{"500", 1}, // ERR_TOOMANYJOINS (unreal) (conflicts: ERR_NOREHASHPARAM (rusnet-ircd) ERR_CANNOTSETMODDER (inspIRCd))
	{"501", 2}, // ERR_UMODEUNKOWNFLAG (RFC1459) (conflict: ERR_UNKNOWNSNOMASK (inspIRCd))
	{"502", 2}, // ERR_USERSDONTMATCH (RFC1459)
	{"503", 2}, // ERR_GHOSTEDCLIENT (hybrid) depreciated (conflict & depreciated: ERR_VWORLDWARN (austhex))
	{"504", 1}, // ERR_USERNOTONSERV (conflict: ERR_LAST_ERR_MSG (bahamut))
	{"505", 1}, // ERR_NOTINVITED (inspIRCd) (conflict & depreciated: ERR_LAST_ERR_MSG (oftc-hybrid))
	{"511", 2}, // ERR_SILELISTFULL (ircu)
	{"512", 1}, // ERR_TOOMANYWATCH (bahamut)/ERR_NOTIFYFULL (aircd) (conflicts: ERR_NOSUCHGLINE (ircu) depreciated: ERR_NEEDPONG (oftc-hybrid))
	{"513", 1}, // ERR_BADPING (ircu)/ERR_WRONGPONG (charybdis)/ERR_NEEDPONG (ultimate)
	{"514", 1}, // ERR_TOOMANYDCC (bahamut) (conflicts: ERR_NOSUCHJUPE (ircu) depreciated: ERR_INVALID_ERROR (ircu))
	{"515", 1}, // ERR_BADEXPIRE (ircu)
	{"516", 1}, // ERR_DONTCHEAT (ircu)
	{"517", 3}, // ERR_DISABLED (ircu)
	{"518", 1}, // ERR_NOINVITE (unreal) (conflict: ERR_LONGMASK (ircu))
	{"519", 1}, // ERR_ADMONLY (unreal) (conflict: ERR_TOOMANYUSERS (ircu))
	{"520", 1}, // ERR_OPERONLY (unreal)/ERR_OPERONLYCHAN (hybrid)/ERR_CANTJOINOPERSONLY (inspIRCd) (conflicts: ERR_MASKTOOWIDE (ircu) depreciated: ERR_WHOTRUNC (austhex))
	{"521", 1}, // ERR_LISTSYNTAX (bahamut) (conflict: ERR_NOSUCHGLINE (nefarious))
	{"522", 1}, // ERR_WHOSYNTAX (bahamut)
	{"523", 2}, // ERR_WHOLIMEXCEED (bahamut)
	{"524", 1}, // ERR_QUARANTINED (ircu) (conflicts: ERR_OPERSVERIFY (unreal) ERR_HELPNOTFOUND (hybrid))
	{"525", 1}, // ERR_INVALIDKEY (ircu) (conflict & depreciated: ERR_REMOTEPFX)
	{"526", 2}, // ERR_PFXUNROUTABLE depreciated
	{"530", 1}, // ERR_BADHOSTMASK (snircd)
	{"531", 3}, // ERR_CANTSENDTOUSER (inspIRCd)/ERR_HOSTUNAVAIL (snircd)
	{"550", 1}, // ERR_BADHOSTMASK (quakenet)
	{"551", 1}, // ERR_HOSTUNAVAIL (quakenet)
	{"552", 1}, // ERR_USINGSLINE (quakenet)
	{"553", 1}, // ERR_STATSSLINE (quakenet)
	{"560", 1}, // ERR_NOTLOWEROPLEVEL (ircu)
	{"561", 1}, // ERR_NOTMANAGER (ircu)
	{"562", 1}, // ERR_CHANSECURED (ircu)
	{"563", 1}, // ERR_UPASSSET (ircu)
	{"564", 1}, // ERR_UPASSNOTSET (ircu)
	{"565", 1}, // ERR_NOMANAGER_LONG (ircu) depreciated
	{"566", 1}, // ERR_NOMANAGER (ircu)
	{"567", 1}, // ERR_UPASS_SAME_APASS (ircu)
	{"568", 1}, // ERR_LASTERROR (ircu) (conflict: RPL_NOOMOTD (nefarious))
	{"569", 4}, // RPL_WHOISASN (inspIRCd)
	{"573", 1}, // ERR_CANNOTSENDRP (ergo)
	{"597", 1}, // RPL_REAWAY (unreal)
	{"598", 5}, // RPL_GONEAWAY (unreal)
	{"599", 5}, // RPL_NOTAWAY (unreal)
	{"600", 5}, // RPL_LOGON (unreal)
	{"601", 5}, // RPL_LOGOFF (unreal)
	{"602", 5}, // RPL_WATCHOFF (unreal)
	{"603", 1}, // RPL_WATCHSTAT (unreal)
	{"604", 5}, // RPL_NOWON (unreal)
	{"605", 5}, // RPL_NOWOFF (unreal)
	{"606", 1}, // RPL_WATCHLIST (unreal)
	{"607", 1}, // RPL_ENDOFWATCHLIST (unreal)
	{"608", 1}, // RPL_WATCHCLEAR (ultimate)/RPL_CLEARWATCH (unreal)
	{"609", 5}, // RPL_NOWISAWAY (unreal)
	{"610", 1}, // RPL_MAPMORE (unreal) (conflict: RPL_ISOPER (ultimate))
	{"611", 1}, // RPL_ISLOCOP (ultimate)
	{"612", 1}, // RPL_ISNOTOPER (ultimate)
	{"613", 1}, // RPL_ENDOFISOPER (ultimate)
	{"615", 1}, // RPL_MAPMORE (ptlink) (conflict: RPL_WHOISMODES (ultimate))
	{"616", 1}, // RPL_WHOISHOST (ultimate)
	{"617", 1}, // RPL_WHOISSSLFP (nefarious) (conflicts: RPL_DCCSTATUS (bahamut) RPL_WHOISBOT (ultimate))
	{"618", 1}, // RPL_DCCLIST (bahamut)
	{"619", 1}, // RPL_ENDOFDCCLIST (bahamut) (conflict: RPL_WHOWASHOST (ultimate))
	{"620", 1}, // RPL_DCCINFO (bahamut) (conflict: RPL_RULESSTART (ultimate))
	{"621", 1}, // RPL_RULES (ultimate)
	{"622", 1}, // RPL_ENDOFRULES (ultimate)
	{"623", 1}, // RPL_MAPMORE (ultimate)
	{"624", 1}, // RPL_OMOTDSTART (ultimate)
	{"625", 1}, // RPL_OMOTD (ultimate)
	{"626", 1}, // RPL_ENDOFOMOTD (ultimate)
	{"630", 1}, // RPL_SETTINGS (ultimate)
	{"631", 1}, // RPL_ENDOFSETTINGS (ultimate)
	{"640", 1}, // RPL_DUMPING (unreal) depreciated
	{"641", 1}, // RPL_DUMPRPL (unreal) depreciated
	{"642", 1}, // RPL_EODUMP (unreal) depreciated
	{"650", 3}, // RPL_SYNTAX (inspIRCd)
	{"651", 3}, // RPL_CHANNELMSG (inspIRCd)
	{"652", 3}, // RPL_WHOWASIP (inspIRCd)
	{"653", 2}, // RPL_UNINVITED (inspIRCd)
	{"659", 3}, // RPL_SPAMCMDFWD (unreal)
	{"670", 2}, // RPL_STARTTLS (IRCv3)
	{"671", 3}, // RPL_WHOISSECURE (unreal)/RPL_WOISSSL (nefarious)
	{"672", 2}, // RPL_UNKNOWNMODES (ithildin) (conflict: RPL_WHOISREALIP (rizon)/RPL_WHOISCGI (plexus))
	{"673", 2}, // RPL_CANNOTSETMODES (ithildin)
	{"674", 2}, // RPL_WHOISYOURID (ChatIRCd)
	{"687", 1}, // RPL_YOURLANGUAGESARE (ergo)
	{"690", 2}, // ERR_REDIRECT (inspIRCd)
	{"691", 2}, // ERR_STARTTLS (IRCv3)
	{"696", 5}, // ERR_INVALIDMODEPARAM (inspIRCd)
	{"697", 5}, // ERR_LISTMODEALREADYSET (inspIRCd)
	{"698", 5}, // ERR_LISTMODENOTSET (inspIRCd)
	{"700", 2}, // RPL_COMMANDS (inspIRCd)
	{"701", 2}, // RPL_COMMANDSEND (inspIRCd)
	{"702", 2}, // RPL_MODLIST (ratbox) (conflict & depreciated: RPL_COMMANDS (inspIRCd))
	{"703", 2}, // RPL_ENDOFMODLIST (ratbox) (conflict & depreciated: RPL_COMMANDSEND (inspIRCd))
	{"704", 3}, // RPL_HELPSTART (ratbox)
	{"705", 3}, // RPL_HELPTXT (ratbox)
	{"706", 3}, // RPL_ENDOFHELP (ratbox)
	{"707", 3}, // ERR_TARGCHANGE (ratbox)
	{"708", 8}, // RPL_ETRACEFULL (ratbox)
	{"709", 7}, // RPL_ETRACE (ratbox)
	{"710", 3}, // RPL_KNOCK (ratbox)
	{"711", 3}, // RPL_KNOCKDLVR (ratbox)
	{"712", 3}, // ERR_TOOMANYKNOCK (ratbox)
	{"713", 3}, // ERR_CHANOPEN (ratbox)
	{"714", 3}, // ERR_KNOCKONCHAN (ratbox)
	{"715", 2}, // ERR_KNOCKDISABLED (ratbox) (conflicts: ERR_TOOMANYINVITE (hybrid) RPL_INVITETHROTTLE (rizon))
	{"716", 2}, // RPL_TARGUMODEG (ratbox)/ERR_TARGUMODEG
	{"717", 2}, // RPL_TARGNOTIFY (ratbox)
	{"718", 3}, // RPL_UMODEGMSG (ratbox)
	{"720", 2}, // RPL_OMOTDSTART (ratbox)
	{"721", 2}, // RPL_OMOTD (ratbox)
	{"722", 2}, // RPL_ENDOFOMOTD (ratbox)
	{"723", 3}, // ERR_NOPRIVS (ratbox)
	{"724", 5}, // RPL_TESTMASK (ratbox)
	{"725", 5}, // RPL_TESTLINE (ratbox)
	{"726", 3}, // RPL_NOTESTLINE (ratbox)
	{"727", 1}, // RPL_TESTMASKGECOS (ratbox) (conflict: RPL_ISCAPTURED (oftc-hybrid))
	{"728", 1}, // RPL_QUIETLIST (charybdis) (conflict: RPL_ISUNCAPTURED (ofc-hybrid))
	{"729", 4}, // RPL_ENDOFQUIETLIST (charybdis)
	{"730", 2}, // RPL_MONONLINE (ratbox)
	{"731", 2}, // RPL_MONOFFLINE (ratbox)
	{"732", 2}, // RPL_MONLIST (ratbox)
	{"733", 2}, // RPL_ENDOFMONLIST (ratbox)
	{"734", 4}, // ERR_MONLISTFULL (ratbox)
	{"740", 2}, // RPL_RSACHALLENGE2 (ratbox)
	{"741", 2}, // RPL_ENDOFRSACHALLENGE2 (ratbox)
	{"742", 4}, // ERR_MLOCKRESTRICTED (charybdis)
	{"743", 4}, // ERR_INVALIDBAN (charybdis)
	{"744", 1}, // ERR_TOPICLOCK (inspIRCd)
	{"750", 2}, // RPL_SCANMATCHED (ratbox)
	{"751", 7}, // RPL_SCANUMODES (ratbox)
	{"759", 2}, // RPL_ETRACEEND (irc2.11)
	{"760", 4}, // RPL_WHOISKEYVALUE (IRCv3)
	{"761", 3}, // RPL_KEYVALUE (IRCv3)
	{"762", 1}, // RPL_METADATAEND (IRCv3)
	{"764", 2}, // ERR_METADATALIMIT (IRCv3)
	{"765", 2}, // ERR_TARGETINVALID (IRCv3)
	{"766", 3}, // ERR_NOMATCHINGKEY (IRCv3)
	{"767", 2}, // ERR_KEYINVALID (IRCv3)
	{"768", 3}, // ERR_KEYNOTSET (IRCv3)
	{"769", 3}, // ERR_KEYNOPERMISSION (IRCv3)
	{"771", 1}, // RPL_XINFO (ithildin)
	{"773", 1}, // RPL_XINFOSTART (ithildin)
	{"774", 1}, // RPL_XINFOEND (ithildin)
	{"801", 3}, // RPL_STATSCOUNTRY (inspIRCd)
	{"802", 1}, // RPL_CHECK (inspIRCd)
	{"803", 4}, // RPL_OTHERUMODEIS (inspIRCd)
	{"804", 4}, // RPL_OTHERSNOMASKIS (inspIRCd)
	{"900", 4}, // RPL_LOGGEDIN (IRCv3)
	{"901", 3}, // RPL_LOGGEDOUT (IRCv3)
	{"902", 2}, // ERR_NICKLOCKED (IRCv3)
	{"903", 2}, // RPL_SASLSUCCESS (IRCv3)
	{"904", 2}, // ERR_SASLFAIL (IRCv3)
	{"905", 2}, // ERR_SASLTOOLONG (IRCv3)
	{"906", 2}, // ERR_SASLABORTED (IRCv3)
	{"907", 2}, // ERR_SASLALREADY (IRCv3)
	{"908", 3}, // RPL_SASLMECHS (IRCv3)
	{"910", 3}, // RPL_ACCESSLIST (inspIRCd)
	{"911", 3}, // RPL_ENDOFACCESSLIST (inspIRCd)
	{"926", 3}, // ERR_BADCHANNEL (inspIRCd)
	{"936", 4}, // ERR_WORDFILTERED (inspIRCd) depreciated
	{"937", 3}, // ERR_ALREADYCHANFILTERED (inspIRCd) depreciated
	{"938", 3}, // ERR_NOSUCHCHANFILTER (inspIRCd) depreciated
	{"939", 3}, // ERR_CHANFILTERFULL (inspIRCd) depreciated
	{"940", 3}, // RPL_ENDOFSPAMFILTER (inspIRCd)
	{"941", 5}, // RPL_SPAMFILTER (inspIRCd)
	{"942", 3}, // ERR_INVALIDWATCHNICK (inspIRCd)
	{"944", 2}, // RPL_IDLETIMESET (inspIRCd)
	{"945", 3}, // RPL_NICKLOCKOFF (inspIRCd)
	{"946", 3}, // ERR_NICKNOTLOCKED (inspIRCd)
	{"947", 3}, // RPL_NICKLOCKON (inspIRCd)
	{"948", 2}, // ERR_INVALIDIDLETIME (inspIRCd)
	{"950", 3}, // RPL_UNSILENCED (inspIRCd)
	{"951", 3}, // RPL_SILENCED (inspIRCd)
	{"952", 3}, // ERR_SILENCE (inspIRCd)
	{"953", 3}, // RPL_ENDOFEXEMPTIONLIST (inspIRCd)
	{"954", 5}, // RPL_EXEMPTIONLIST (inspIRCd)
	{"960", 3}, // RPL_ENDOFPROPLIST (inspIRCd)
	{"961", 2}, // RPL_PROPLIST (inspIRCd)
	{"972", 3}, // ERR_CANNOTDOCOMMAND (unreal) (conflict: ERR_CANTUNLOADMODULE (inspIRCd))
	{"973", 3}, // RPL_UNLOADEDMODULE (inspIRCd)
	{"974", 3}, // RPL_CANNOTCHANGECHANMODE (unreal) (conflict: ERR_CANTLOADMODULE (inspIRCd))
	{"975", 1}, // RPL_LOADEDMODULE (inspIRCd) (conflict: ERR_LASTERROR (nefarious))
	{"981", 1}, // ERR_TOOMANYLANGUAGES (ergo)
	{"982", 1}, // ERR_NOLANGUAGE (ergo)
	{"988", 3}, // RPL_SERVLOCKON (inspIRCd)
	{"989", 3}, // RPL_SERVLOCKOFF (inspIRCd)
	{"990", 2}, // RPL_DCCALLOWSTART (inspIRCd)
	{"991", 3}, // RPL_DCCALLOWLIST (inspIRCd)
	{"992", 2}, // RPL_DCCALLOWEND (inspIRCd)
	{"993", 3}, // RPL_DCCALLOWTIMED (inspIRCd)
	{"994", 3}, // RPL_DCCALLOWPERMANENT (inspIRCd)
	{"995", 3}, // RPL_DCCALLOWREMOVED (inspIRCd)
	{"996", 3}, // ERR_DCCALLOWINVALID (inspIRCd)
	{"997", 3}, // RPL_DCCALLOWEXPIRED (inspIRCd)
	{"998", 2}, // ERR_UNKNOWNDCCALLOWCMD (inspIRCd) (depreciated: RPL_DCCALLOWHELP (inspIRCd))
	{"999", 1}, // ERR_NUMERIC_ERR (bahamut)/ERR_NUMERICERR/ERR_LAST_ERR_MSG (depreciated: RPL_ENDOFDCCALLOWHELP (inspIRCd))
}
